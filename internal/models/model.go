package models

import (
	"time"

	"github.com/google/uuid"
)

// Model is implemented by every resource stored by the finance tracker.
type Model interface {
	Self() string           // Human readable name of the resource type
	Collection() Collection // Collection the resource is stored in
	Meta() DefaultModel     // ID and timestamps
}

// Entity is a Model that can be stamped and validated before it is saved.
type Entity interface {
	Model
	SetMeta(DefaultModel)
	Normalize() error
}

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`   // Last time the resource was updated
}

// Meta returns the DefaultModel itself. It is promoted to every resource
// embedding it.
func (m DefaultModel) Meta() DefaultModel {
	return m
}

// SetMeta replaces ID and timestamps. Timestamps are stored in UTC.
func (m *DefaultModel) SetMeta(meta DefaultModel) {
	m.ID = meta.ID
	m.CreatedAt = meta.CreatedAt.In(time.UTC)
	m.UpdatedAt = meta.UpdatedAt.In(time.UTC)
}
