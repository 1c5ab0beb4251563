// Package mongo implements the cloud storage backend on MongoDB.
//
// Every collection of the finance tracker maps to a MongoDB collection
// of the same name, every resource to one document.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// record is the stored form of a storage.Document.
//
// The resource itself is kept under "data" so that createdAt can be indexed
// and sorted on as a BSON date.
type record struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`
	Data      bson.D    `bson:"data"`
}

type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Connect connects to the MongoDB deployment at uri and verifies the
// connection with a ping.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	s := &Store{client: client, db: client.Database(database), timeout: timeout}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

func (s *Store) Name() string {
	return "mongo"
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func toRecord(d storage.Document) (record, error) {
	var data bson.D
	if err := bson.UnmarshalExtJSON(d.Body, false, &data); err != nil {
		return record{}, fmt.Errorf("converting document %s: %w", d.ID, err)
	}

	return record{ID: d.ID, CreatedAt: d.CreatedAt.UTC(), Data: data}, nil
}

func fromRecord(r record) (storage.Document, error) {
	body, err := bson.MarshalExtJSON(r.Data, false, false)
	if err != nil {
		return storage.Document{}, fmt.Errorf("converting record %s: %w", r.ID, err)
	}

	return storage.Document{ID: r.ID, CreatedAt: r.CreatedAt, Body: body}, nil
}

func (s *Store) Load(ctx context.Context, c models.Collection) ([]storage.Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.db.Collection(c.String()).Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var records []record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	docs := make([]storage.Document, 0, len(records))
	for _, r := range records {
		d, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, nil
}

func (s *Store) Save(ctx context.Context, c models.Collection, d storage.Document) error {
	r, err := toRecord(d)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.db.Collection(c.String()).ReplaceOne(ctx, bson.D{{Key: "_id", Value: r.ID}}, r, options.Replace().SetUpsert(true))
	return err
}

func (s *Store) Delete(ctx context.Context, c models.Collection, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.Collection(c.String()).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// Replace deletes all documents of the collection and inserts docs.
//
// The two steps are not atomic.
func (s *Store) Replace(ctx context.Context, c models.Collection, docs []storage.Document) error {
	records := make([]record, 0, len(docs))
	for _, d := range docs {
		r, err := toRecord(d)
		if err != nil {
			return err
		}
		records = append(records, r)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	coll := s.db.Collection(c.String())
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	_, err := coll.InsertMany(ctx, records)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Ping(ctx, nil); err != nil {
		return errors.Join(storage.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.client.Disconnect(ctx)
}
