package authors

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// ParseID converts an entity identifier into a primary key.
func ParseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidID, id)
	}
	return uint(n), nil
}

// FormatID converts a primary key into an entity identifier.
func FormatID(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// ToEntity maps a stored author to the domain type.
func ToEntity(rec Record) entities.Author {
	author := entities.Author{
		ID:        FormatID(rec.ID),
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Bio:       StringPtr(rec.Bio),
		BirthDate: TimePtr(rec.BirthDate),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.DeletedAt.Valid {
		deletedAt := rec.DeletedAt.Time
		author.DeletedAt = &deletedAt
	}
	return author
}

// ToRecord maps a domain author to its storage shape. An empty ID maps to a
// zero primary key so storage assigns one.
func ToRecord(author entities.Author) (Record, error) {
	rec := Record{
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		FirstNameKey: NameKey(author.FirstName),
		LastNameKey:  NameKey(author.LastName),
		Bio:          NullString(author.Bio),
		BirthDate:    NullTime(author.BirthDate),
		CreatedAt:    author.CreatedAt,
		UpdatedAt:    author.UpdatedAt,
	}
	if author.ID != "" {
		id, err := ParseID(author.ID)
		if err != nil {
			return Record{}, err
		}
		rec.ID = id
	}
	if author.DeletedAt != nil {
		rec.DeletedAt = gorm.DeletedAt{Time: *author.DeletedAt, Valid: true}
	}
	return rec, nil
}

// NullString maps an optional string to its nullable column value.
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr maps a nullable column value to an optional string.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// NullTime maps an optional time to its nullable column value.
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// TimePtr maps a nullable column value to an optional time.
func TimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
