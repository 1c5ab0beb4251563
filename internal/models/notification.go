package models

import (
	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is an entry in the in-app notification feed.
//
// CreatedAt is the time the notification was raised.
type Notification struct {
	DefaultModel
	Title    string     `json:"title" example:"Budget exceeded"`
	Message  string     `json:"message" example:"You have exceeded the budget for Food (512.00/500.00 EUR)"`
	Severity Severity   `json:"severity" example:"error"`
	Read     bool       `json:"read" example:"false"`
	Rule     string     `json:"rule,omitempty" example:"budget.exceeded"`                          // The check that raised the notification
	Target   *uuid.UUID `json:"target,omitempty" example:"c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // The resource the notification is about
}

func (Notification) Self() string {
	return "Notification"
}

func (Notification) Collection() Collection {
	return Notifications
}

func (n *Notification) Normalize() error {
	trim(&n.Title, &n.Message)

	if n.Title == "" {
		return required("title")
	}

	switch n.Severity {
	case "":
		n.Severity = SeverityInfo
	case SeverityInfo, SeverityWarning, SeveritySuccess, SeverityError:
	default:
		return ErrSeverityInvalid
	}

	return nil
}
