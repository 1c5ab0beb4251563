package ledger

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
)

// Effect is a side effect requested by a mutation of State. The Ledger
// executes effects in order.
type Effect interface {
	effect()
}

// Persist stores the resource.
type Persist struct {
	Model models.Model
}

// Remove deletes a resource from storage.
type Remove struct {
	Collection models.Collection
	ID         uuid.UUID
}

// Truncate deletes all resources of a collection from storage.
type Truncate struct {
	Collection models.Collection
}

// Notify raises a notification. The Notification is a draft without ID,
// it is completed and stored when the effect is executed.
type Notify struct {
	Notification models.Notification
}

func (Persist) effect()  {}
func (Remove) effect()   {}
func (Truncate) effect() {}
func (Notify) effect()   {}
