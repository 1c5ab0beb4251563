// Package storage defines the persistence facade of the finance tracker.
//
// Resources are stored as opaque JSON documents grouped by collection.
// Backends implement Store, Fallback combines a primary with a secondary
// backend that takes over whenever the primary fails.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fintrack/backend/internal/models"
)

var (
	ErrNotConfigured = errors.New("the storage backend is not configured")
	ErrNotFound      = errors.New("the document does not exist")
	ErrUnavailable   = errors.New("no storage backend is available")
)

// Document is a single stored resource.
type Document struct {
	ID        string
	CreatedAt time.Time
	Body      json.RawMessage
}

type Store interface {
	// Name identifies the backend in logs and change events.
	Name() string

	// Load returns all documents of a collection ordered by CreatedAt.
	Load(ctx context.Context, c models.Collection) ([]Document, error)

	// Save creates or replaces the document with the same ID.
	Save(ctx context.Context, c models.Collection, d Document) error

	// Delete removes a document. It returns ErrNotFound if no document has the ID.
	Delete(ctx context.Context, c models.Collection, id string) error

	// Replace swaps the whole collection for docs.
	Replace(ctx context.Context, c models.Collection, docs []Document) error

	Ping(ctx context.Context) error
	Close() error
}

type notConfigured string

// NotConfigured returns a Store that fails every call with ErrNotConfigured.
func NotConfigured(name string) Store {
	return notConfigured(name)
}

func (n notConfigured) Name() string {
	return string(n)
}

func (notConfigured) Load(context.Context, models.Collection) ([]Document, error) {
	return nil, ErrNotConfigured
}

func (notConfigured) Save(context.Context, models.Collection, Document) error {
	return ErrNotConfigured
}

func (notConfigured) Delete(context.Context, models.Collection, string) error {
	return ErrNotConfigured
}

func (notConfigured) Replace(context.Context, models.Collection, []Document) error {
	return ErrNotConfigured
}

func (notConfigured) Ping(context.Context) error {
	return ErrNotConfigured
}

func (notConfigured) Close() error {
	return nil
}
