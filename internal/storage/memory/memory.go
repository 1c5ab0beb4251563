// Package memory implements a storage backend that keeps all documents
// in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/storage"
)

type Store struct {
	mu          sync.RWMutex
	collections map[models.Collection][]storage.Document
}

func New() *Store {
	return &Store{collections: make(map[models.Collection][]storage.Document)}
}

func (s *Store) Name() string {
	return "memory"
}

func (s *Store) Load(_ context.Context, c models.Collection) ([]storage.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := slices.Clone(s.collections[c])
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	return docs, nil
}

func (s *Store) Save(_ context.Context, c models.Collection, d storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[c]
	i := slices.IndexFunc(docs, func(e storage.Document) bool { return e.ID == d.ID })
	if i < 0 {
		s.collections[c] = append(docs, d)
		return nil
	}

	docs[i] = d
	return nil
}

func (s *Store) Delete(_ context.Context, c models.Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[c]
	i := slices.IndexFunc(docs, func(e storage.Document) bool { return e.ID == id })
	if i < 0 {
		return storage.ErrNotFound
	}

	s.collections[c] = slices.Delete(docs, i, i+1)
	return nil
}

func (s *Store) Replace(_ context.Context, c models.Collection, docs []storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[c] = slices.Clone(docs)
	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
