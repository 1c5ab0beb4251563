// Package local implements the fallback storage backend.
//
// It mimics a browser's local storage: a table of string keys of the
// form "<namespace>.<collection>" where each value is the JSON array of
// all resources of that collection. Every write rewrites the whole array.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/storage"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one key of the store.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

type Store struct {
	db        *gorm.DB
	namespace string

	// mu guards the database and the cache so that a read never
	// caches a value that a concurrent write just replaced
	mu    sync.Mutex
	cache *ristretto.Cache[string, []storage.Document]
}

// Open opens the SQLite database at path, creating it and its parent
// directory if needed.
func Open(path, namespace string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: &logger{Logger: log.Logger},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := registerCallbacks(db); err != nil {
		return nil, err
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []storage.Document]{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     1 << 24, // bytes of document bodies
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return &Store{db: db, namespace: namespace, cache: cache}, nil
}

func (s *Store) Name() string {
	return "local"
}

// Key returns the key collection c is stored under.
func (s *Store) Key(c models.Collection) string {
	return s.namespace + "." + c.String()
}

// header holds the fields every stored resource has.
type header struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Store) read(ctx context.Context, c models.Collection) ([]storage.Document, error) {
	key := s.Key(c)
	if docs, ok := s.cache.Get(key); ok {
		return slices.Clone(docs), nil
	}

	var entry Entry
	err := s.db.WithContext(ctx).Where(&Entry{Key: key}).Limit(1).Find(&entry).Error
	if err != nil {
		return nil, err
	}

	if entry.Value == "" {
		return []storage.Document{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(entry.Value), &items); err != nil {
		return nil, fmt.Errorf("value of %s is corrupted: %w", key, err)
	}

	docs := make([]storage.Document, 0, len(items))
	var cost int64
	for _, item := range items {
		var h header
		if err := json.Unmarshal(item, &h); err != nil {
			return nil, fmt.Errorf("value of %s is corrupted: %w", key, err)
		}

		docs = append(docs, storage.Document{ID: h.ID, CreatedAt: h.CreatedAt, Body: item})
		cost += int64(len(item))
	}

	s.cache.Set(key, docs, cost)
	return slices.Clone(docs), nil
}

func (s *Store) write(ctx context.Context, c models.Collection, docs []storage.Document) error {
	key := s.Key(c)
	s.cache.Del(key)

	items := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.Body)
	}

	value, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Key: key, Value: string(value)}).Error
}

func (s *Store) Load(ctx context.Context, c models.Collection) ([]storage.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(ctx, c)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	return docs, nil
}

func (s *Store) Save(ctx context.Context, c models.Collection, d storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(ctx, c)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(docs, func(e storage.Document) bool { return e.ID == d.ID })
	if i < 0 {
		docs = append(docs, d)
	} else {
		docs[i] = d
	}

	return s.write(ctx, c, docs)
}

func (s *Store) Delete(ctx context.Context, c models.Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(ctx, c)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(docs, func(e storage.Document) bool { return e.ID == id })
	if i < 0 {
		return storage.ErrNotFound
	}

	return s.write(ctx, c, slices.Delete(docs, i, i+1))
}

func (s *Store) Replace(ctx context.Context, c models.Collection, docs []storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, c, docs)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) Close() error {
	s.cache.Close()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
