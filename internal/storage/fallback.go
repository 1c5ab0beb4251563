package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Fallback is a Store that uses Primary and switches to Secondary for
// every call that Primary could not serve.
//
// A missing document is a valid answer of the primary and is not
// retried. There is no reconciliation, writes that went to the
// secondary stay there.
type Fallback struct {
	Primary   Store
	Secondary Store
	Bus       *events.Bus // Receives a Change after every successful write. Optional
}

func NewFallback(primary, secondary Store, bus *events.Bus) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary, Bus: bus}
}

func (f *Fallback) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// do runs op against the primary and, if that fails, against the
// secondary. It returns the store that served the call.
func (f *Fallback) do(operation string, c models.Collection, op func(Store) error) (Store, error) {
	primaryErr := op(f.Primary)
	if primaryErr == nil || errors.Is(primaryErr, ErrNotFound) {
		return f.Primary, primaryErr
	}

	event := log.Warn()
	if errors.Is(primaryErr, ErrNotConfigured) {
		event = log.Debug()
	}
	event.
		Str("backend", f.Primary.Name()).
		Str("fallback", f.Secondary.Name()).
		Str("operation", operation).
		Str("collection", c.String()).
		Err(primaryErr).
		Msg("primary storage failed, using fallback")

	secondaryErr := op(f.Secondary)
	if secondaryErr == nil || errors.Is(secondaryErr, ErrNotFound) {
		return f.Secondary, secondaryErr
	}

	log.Error().
		Str("operation", operation).
		Str("collection", c.String()).
		Err(secondaryErr).
		Msg("fallback storage failed")

	return nil, fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(primaryErr, secondaryErr))
}

func (f *Fallback) publish(s Store, c models.Collection, op events.Op, id string) {
	f.Bus.Publish(events.Change{
		Collection: c,
		Op:         op,
		ID:         id,
		Backend:    s.Name(),
		Fallback:   s != f.Primary,
	})
}

func (f *Fallback) Load(ctx context.Context, c models.Collection) ([]Document, error) {
	var docs []Document
	_, err := f.do("load", c, func(s Store) error {
		var err error
		docs, err = s.Load(ctx, c)
		return err
	})

	return docs, err
}

func (f *Fallback) Save(ctx context.Context, c models.Collection, d Document) error {
	s, err := f.do("save", c, func(s Store) error {
		return s.Save(ctx, c, d)
	})
	if err != nil {
		return err
	}

	f.publish(s, c, events.OpSave, d.ID)
	return nil
}

func (f *Fallback) Delete(ctx context.Context, c models.Collection, id string) error {
	s, err := f.do("delete", c, func(s Store) error {
		return s.Delete(ctx, c, id)
	})
	if err != nil {
		return err
	}

	f.publish(s, c, events.OpDelete, id)
	return nil
}

func (f *Fallback) Replace(ctx context.Context, c models.Collection, docs []Document) error {
	s, err := f.do("replace", c, func(s Store) error {
		return s.Replace(ctx, c, docs)
	})
	if err != nil {
		return err
	}

	f.publish(s, c, events.OpReplace, "")
	return nil
}

// Ping succeeds if any of the two backends is reachable.
func (f *Fallback) Ping(ctx context.Context) error {
	_, err := f.do("ping", "", func(s Store) error {
		return s.Ping(ctx)
	})
	return err
}

func (f *Fallback) Close() error {
	return errors.Join(f.Primary.Close(), f.Secondary.Close())
}
