package entities

import "time"

// Book is a catalog book owned by exactly one Author.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	PublishedDate *time.Time `json:"publishedDate"`
	Genre         *string    `json:"genre"`
	AuthorID      string     `json:"authorId"`
	Author        *Author    `json:"author,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BookChanges holds the fields of a book update. Nil fields keep their
// stored value.
type BookChanges struct {
	Title         *string
	ISBN          *string
	PublishedDate *time.Time
	Genre         *string
	AuthorID      *string
}

// IsEmpty reports whether no field is set.
func (c BookChanges) IsEmpty() bool {
	return c.Title == nil && c.ISBN == nil && c.PublishedDate == nil && c.Genre == nil && c.AuthorID == nil
}

// BookFilter selects books for listing. Title and ISBN are case-insensitive
// partial matches, AuthorID is exact; all supplied fields must match.
type BookFilter struct {
	Title    string
	ISBN     string
	AuthorID string

	SortBy   string
	SortDesc bool
}
