// Package events distributes change notifications for persisted resources
// to in-process subscribers.
package events

import (
	"sync"
	"time"

	"github.com/fintrack/backend/internal/models"
)

type Op string

const (
	OpSave    Op = "save"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
)

// Change describes one completed write to a storage backend.
type Change struct {
	Collection models.Collection `json:"collection" example:"transactions"`
	Op         Op                `json:"op" example:"save"`
	ID         string            `json:"id,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Empty for replace
	Backend    string            `json:"backend" example:"mongo"`                                     // Name of the backend that accepted the write
	Fallback   bool              `json:"fallback" example:"false"`                                    // The primary backend failed
	Time       time.Time         `json:"time" example:"2024-03-01T10:00:00Z"`
}

// Bus is a synchronous fan-out of changes. The zero value is ready to use.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Change)
}

// Subscribe registers fn for all future changes. The returned function
// removes the subscription. Subscribing to a nil bus is a no-op.
func (b *Bus) Subscribe(fn func(Change)) (cancel func()) {
	if b == nil {
		return func() {}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Change))
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish calls every subscriber with c. A nil bus drops the change.
//
// Subscribers run on the publishing goroutine and must not block.
func (b *Bus) Publish(c Change) {
	if b == nil {
		return
	}

	if c.Time.IsZero() {
		c.Time = time.Now().UTC()
	}

	b.mu.RLock()
	subs := make([]func(Change), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(c)
	}
}
