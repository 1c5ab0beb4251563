package storage

import (
	"encoding/json"
	"fmt"

	"github.com/fintrack/backend/internal/models"
)

// Encode serializes a resource into a Document.
func Encode(m models.Model) (Document, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return Document{}, fmt.Errorf("encoding %s: %w", m.Self(), err)
	}

	meta := m.Meta()
	return Document{
		ID:        meta.ID.String(),
		CreatedAt: meta.CreatedAt,
		Body:      body,
	}, nil
}

// Decode deserializes documents into resources of type T.
func Decode[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Body, &v); err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", d.ID, err)
		}
		out = append(out, v)
	}

	return out, nil
}
