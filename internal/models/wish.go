package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WishPriority string

const (
	PriorityLow    WishPriority = "low"
	PriorityMedium WishPriority = "medium"
	PriorityHigh   WishPriority = "high"
)

type WishStatus string

const (
	StatusPending  WishStatus = "pending"
	StatusSaving   WishStatus = "saving"
	StatusAchieved WishStatus = "achieved"
)

// Wish is a purchase the user is saving for.
type Wish struct {
	DefaultModel
	Name           string          `json:"name" example:"New bike"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice" example:"899.99"`
	Category       string          `json:"category" example:"Hobbies"`
	Priority       WishPriority    `json:"priority" example:"medium"`
	Status         WishStatus      `json:"status" example:"pending"`
	TargetDate     *time.Time      `json:"targetDate,omitempty" example:"2024-09-01T00:00:00Z"` // When the wish should be fulfilled
	Link           string          `json:"link" example:"https://example.com/shop/bike"`        // Where to buy it
}

func (Wish) Self() string {
	return "Wish"
}

func (Wish) Collection() Collection {
	return Wishes
}

func (w *Wish) Normalize() error {
	trim(&w.Name, &w.Category, &w.Link)

	if w.Name == "" {
		return required("name")
	}

	switch w.Priority {
	case "":
		w.Priority = PriorityMedium
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return ErrWishPriorityInvalid
	}

	switch w.Status {
	case "":
		w.Status = StatusPending
	case StatusPending, StatusSaving, StatusAchieved:
	default:
		return ErrWishStatusInvalid
	}

	if w.TargetDate != nil {
		if w.TargetDate.IsZero() {
			w.TargetDate = nil
		} else {
			utc := w.TargetDate.In(time.UTC)
			w.TargetDate = &utc
		}
	}

	return checkAmount(w.EstimatedPrice)
}

// Achieved reports if the wish has been fulfilled.
func (w Wish) Achieved() bool {
	return w.Status == StatusAchieved
}
