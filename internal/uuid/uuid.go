// Package uuid wraps google/uuid so that identifiers can be bound from
// gin query strings and URI parameters.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

var ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse parses s into a UUID. The empty string is the Nil UUID.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, ErrInvalidUUID
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that
// URI and form parameters can be bound to a UUID directly
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// IsNil reports if no UUID has been set
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}
