package team

import (
	"context"
	"errors"
)

// ErrInvalidRecord is returned when a team record is missing its token or
// account id. Handlers validate before calling the store; this is the
// store-side guard for the same invariant.
var ErrInvalidRecord = errors.New("team record requires token and accountId")

// Repository provides CRUD operations on stored team records.
type Repository interface {
	// List returns all stored teams sorted ascending by name.
	List(ctx context.Context) ([]Team, error)

	// Upsert persists the record. An empty ID is assigned a fresh unique id
	// before the write (create); a non-empty ID replaces whatever is stored
	// under that id, whether or not it exists (create-or-replace).
	Upsert(ctx context.Context, t *Team) error

	// Delete removes the record with the given id. Deleting an absent id is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) error
}
