package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordConversion(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	body := `{"id":"b1","name":"Netflix","amount":"12.99","chargeDay":15,"active":true,"tags":{"kind":"stream"}}`

	r, err := toRecord(storage.Document{ID: "b1", CreatedAt: created, Body: []byte(body)})
	require.Nil(t, err)
	assert.Equal(t, "b1", r.ID)
	assert.Equal(t, created, r.CreatedAt)

	d, err := fromRecord(r)
	require.Nil(t, err)
	assert.Equal(t, "b1", d.ID)
	assert.JSONEq(t, body, string(d.Body))
}

func TestRecordConversionInvalid(t *testing.T) {
	_, err := toRecord(storage.Document{ID: "x", Body: []byte(`[1, 2]`)})
	assert.ErrorContains(t, err, "converting document x")
}

func TestConnectInvalidURI(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-mongo-uri", "fintrack", time.Second)
	assert.NotNil(t, err)
}
