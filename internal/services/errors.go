package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInvalidInput         = errors.New("invalid input")
)

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AlreadyExistsError reports a uniqueness conflict on Key.
type AlreadyExistsError struct {
	Entity string
	Key    string
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Key, e.Value)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// InvalidReferenceError reports a foreign identifier that does not resolve.
type InvalidReferenceError struct {
	Field string
	ID    string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not reference an existing record", e.Field, e.ID)
}

func (e *InvalidReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// ReferentialIntegrityError reports an entity that cannot be removed while
// Count dependents still reference it.
type ReferentialIntegrityError struct {
	Entity     string
	ID         string
	Dependents string
	Count      int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot remove %s %q: referenced by %d %s", e.Entity, e.ID, e.Count, e.Dependents)
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrReferentialIntegrity }
