package entities

import "time"

// Author is a catalog author. It carries no persistence knowledge; the
// identifier is an opaque string assigned by the storage layer.
type Author struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Bio       *string    `json:"bio"`
	BirthDate *time.Time `json:"birthDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// AuthorChanges holds the fields of an author update. Nil fields keep
// their stored value.
type AuthorChanges struct {
	FirstName *string
	LastName  *string
	Bio       *string
	BirthDate *time.Time
}

// IsEmpty reports whether no field is set.
func (c AuthorChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Bio == nil && c.BirthDate == nil
}

// AuthorFilter selects authors for listing. Every non-empty text term is a
// case-insensitive partial match; the terms are combined with OR.
type AuthorFilter struct {
	Search    string // matches first or last name
	FirstName string
	LastName  string

	SortBy   string
	SortDesc bool
}
