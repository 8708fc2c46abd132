package books

import (
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/entities"
)

// ToEntity maps a stored book, and its preloaded author if any, to the
// domain type.
func ToEntity(rec Record) entities.Book {
	book := entities.Book{
		ID:            authors.FormatID(rec.ID),
		Title:         rec.Title,
		ISBN:          rec.ISBN,
		PublishedDate: authors.TimePtr(rec.PublishedDate),
		Genre:         authors.StringPtr(rec.Genre),
		AuthorID:      authors.FormatID(rec.AuthorID),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Author != nil {
		author := authors.ToEntity(*rec.Author)
		book.Author = &author
	}
	return book
}

// ToRecord maps a domain book to its storage shape. A resolved author is
// carried along but never written with the book.
func ToRecord(book entities.Book) (Record, error) {
	rec := Record{
		Title:         book.Title,
		ISBN:          book.ISBN,
		PublishedDate: authors.NullTime(book.PublishedDate),
		Genre:         authors.NullString(book.Genre),
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
	if book.ID != "" {
		id, err := authors.ParseID(book.ID)
		if err != nil {
			return Record{}, err
		}
		rec.ID = id
	}
	authorID, err := authors.ParseID(book.AuthorID)
	if err != nil {
		return Record{}, err
	}
	rec.AuthorID = authorID
	if book.Author != nil {
		author, err := authors.ToRecord(*book.Author)
		if err != nil {
			return Record{}, err
		}
		rec.Author = &author
	}
	return rec, nil
}
