package storage_test

import (
	"testing"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	item := models.ShoppingItem{
		DefaultModel: models.DefaultModel{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Name:         "Oat milk",
		Price:        decimal.RequireFromString("1.89"),
	}

	d, err := storage.Encode(item)
	require.Nil(t, err)
	assert.Equal(t, item.ID.String(), d.ID)
	assert.Equal(t, created, d.CreatedAt)

	items, err := storage.Decode[models.ShoppingItem]([]storage.Document{d})
	require.Nil(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.Name, items[0].Name)
	assert.True(t, item.Price.Equal(items[0].Price))
	assert.True(t, created.Equal(items[0].CreatedAt))
}

func TestDecodeBroken(t *testing.T) {
	_, err := storage.Decode[models.Wish]([]storage.Document{{ID: "x", Body: []byte(`{"name": 1}`)}})
	assert.ErrorContains(t, err, "decoding document x")
}
