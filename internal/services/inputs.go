package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

// CreateAuthorInput holds the fields accepted when creating an author.
type CreateAuthorInput struct {
	FirstName string
	LastName  string
	Bio       *string
	BirthDate *time.Time
}

// UpdateAuthorInput holds a partial author update. Nil fields are kept.
type UpdateAuthorInput struct {
	FirstName *string
	LastName  *string
	Bio       *string
	BirthDate *time.Time
}

func (in UpdateAuthorInput) changes() entities.AuthorChanges {
	return entities.AuthorChanges{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
		BirthDate: in.BirthDate,
	}
}

type AuthorQuery struct {
	Filter     entities.AuthorFilter
	Pagination pagination.Params
}

// CreateBookInput holds the fields accepted when creating a book.
// PublishedDate is a date string, see ParseDate.
type CreateBookInput struct {
	Title         string
	ISBN          string
	PublishedDate *string
	Genre         *string
	AuthorID      string
}

// UpdateBookInput holds a partial book update. Nil fields are kept.
type UpdateBookInput struct {
	Title         *string
	ISBN          *string
	PublishedDate *string
	Genre         *string
	AuthorID      *string
}

type BookQuery struct {
	Filter     entities.BookFilter
	Pagination pagination.Params
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a valid date", ErrInvalidInput, s)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
