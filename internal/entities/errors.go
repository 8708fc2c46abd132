package entities

import "errors"

// Storage-level conditions reported by repositories.
var (
	// ErrDuplicateKey is returned when the storage engine rejects a write
	// because of a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidID is returned when an identifier cannot be converted to the
	// storage representation.
	ErrInvalidID = errors.New("invalid identifier")
)
