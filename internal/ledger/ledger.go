// Package ledger holds the state of the finance tracker and applies
// mutations to it.
//
// The Ledger serializes all operations. Each operation validates its
// input, computes the new State with a pure mutation, executes the
// resulting effects against storage and only then commits the new
// State. When an effect fails the operation fails and the State is
// left unchanged. Writes that have already been executed are not rolled
// back.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rules"
	"github.com/fintrack/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
)

// Notifier receives every notification after it has been stored.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

type Ledger struct {
	mu        sync.Mutex
	store     storage.Store
	state     State
	rules     rules.Evaluator
	now       func() time.Time
	notifiers []Notifier
}

type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func WithEvaluator(e rules.Evaluator) Option {
	return func(l *Ledger) {
		l.rules = e
	}
}

func WithNotifier(n Notifier) Option {
	return func(l *Ledger) {
		l.notifiers = append(l.notifiers, n)
	}
}

// New creates a Ledger and loads its state from store.
func New(ctx context.Context, store storage.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store: store,
		rules: rules.Evaluator{Currency: currency.EUR},
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	if err := l.Load(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

func load[E any](ctx context.Context, store storage.Store, c models.Collection, target *[]E) error {
	docs, err := store.Load(ctx, c)
	if err != nil {
		return err
	}

	decoded, err := storage.Decode[E](docs)
	if err != nil {
		return err
	}

	*target = decoded
	return nil
}

// Load replaces the state with the content of the store.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s State
	loaders := []func() error{
		func() error { return load(ctx, l.store, models.Transactions, &s.Transactions) },
		func() error { return load(ctx, l.store, models.RecurringIncomes, &s.RecurringIncomes) },
		func() error { return load(ctx, l.store, models.RecurringExpenses, &s.RecurringExpenses) },
		func() error { return load(ctx, l.store, models.Categories, &s.Categories) },
		func() error { return load(ctx, l.store, models.Wishes, &s.Wishes) },
		func() error { return load(ctx, l.store, models.ShoppingItems, &s.ShoppingItems) },
		func() error { return load(ctx, l.store, models.Notifications, &s.Notifications) },
	}

	for _, loader := range loaders {
		if err := loader(); err != nil {
			return l.storageError("load", err)
		}
	}

	l.state = s
	return nil
}

// Ping checks that storage is reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// State returns a copy of the current state.
func (l *Ledger) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

func (l *Ledger) clock() time.Time {
	return l.now().In(time.UTC)
}

func (l *Ledger) env(now time.Time) Env {
	return Env{Rules: l.rules, Now: now}
}

func (l *Ledger) storageError(operation string, err error) error {
	log.Error().Str("backend", l.store.Name()).Str("operation", operation).Err(err).Msg("storage failed")
	return fmt.Errorf("%w: %w", models.ErrGeneral, err)
}

// commit executes effects and commits next if all of them succeeded.
// It must be called with l.mu held.
//
// It returns the notifications raised by Notify effects.
func (l *Ledger) commit(ctx context.Context, next State, effects []Effect, now time.Time) ([]models.Notification, error) {
	var raised []models.Notification

	for _, effect := range effects {
		switch e := effect.(type) {
		case Persist:
			if err := l.persist(ctx, e.Model); err != nil {
				return nil, err
			}

		case Remove:
			err := l.store.Delete(ctx, e.Collection, e.ID.String())
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, l.storageError("delete", err)
			}

		case Truncate:
			if err := l.store.Replace(ctx, e.Collection, nil); err != nil {
				return nil, l.storageError("replace", err)
			}

		case Notify:
			n := e.Notification
			n.SetMeta(models.DefaultModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now})
			if err := n.Normalize(); err != nil {
				return nil, err
			}

			if err := l.persist(ctx, n); err != nil {
				return nil, err
			}

			next.Notifications = append(slices.Clip(next.Notifications), n)
			raised = append(raised, n)
		}
	}

	l.state = next
	return raised, nil
}

func (l *Ledger) persist(ctx context.Context, m models.Model) error {
	doc, err := storage.Encode(m)
	if err != nil {
		return l.storageError("encode", err)
	}

	if err := l.store.Save(ctx, m.Collection(), doc); err != nil {
		return l.storageError("save", err)
	}

	return nil
}

// apply runs a mutation and hands raised notifications to the notifiers.
// It must be called with l.mu held.
func (l *Ledger) apply(ctx context.Context, now time.Time, next State, effects []Effect) ([]models.Notification, error) {
	raised, err := l.commit(ctx, next, effects, now)
	if err != nil {
		return nil, err
	}

	for _, n := range raised {
		for _, notifier := range l.notifiers {
			if err := notifier.Notify(ctx, n); err != nil {
				log.Warn().Str("notification", n.ID.String()).Err(err).Msg("notifier failed")
			}
		}
	}

	return raised, nil
}
