package services

import (
	"context"
	"errors"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

// BookService enforces ISBN uniqueness and that every book points at an
// existing author.
type BookService struct {
	books   BookRepository
	authors AuthorRepository
}

// NewBookService creates a new book service.
func NewBookService(books BookRepository, authors AuthorRepository) *BookService {
	return &BookService{books: books, authors: authors}
}

func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*entities.Book, error) {
	published, err := parseOptionalDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuthor(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	existing, err := s.books.FindByISBN(ctx, in.ISBN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, isbnConflict(in.ISBN)
	}

	created, err := s.books.Create(ctx, &entities.Book{
		Title:         in.Title,
		ISBN:          in.ISBN,
		PublishedDate: published,
		Genre:         in.Genre,
		AuthorID:      in.AuthorID,
	})
	if errors.Is(err, entities.ErrDuplicateKey) {
		return nil, isbnConflict(in.ISBN)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindByID returns the book with its author resolved.
func (s *BookService) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, &NotFoundError{Entity: "book", ID: id}
	}
	return book, nil
}

// Update merges the supplied fields over the current book. A changed
// AuthorID must resolve to an existing author.
func (s *BookService) Update(ctx context.Context, id string, in UpdateBookInput) (*entities.Book, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	published, err := parseOptionalDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	if in.AuthorID != nil && *in.AuthorID != current.AuthorID {
		if err := s.requireAuthor(ctx, *in.AuthorID); err != nil {
			return nil, err
		}
	}

	updated, err := s.books.Update(ctx, id, entities.BookChanges{
		Title:         in.Title,
		ISBN:          in.ISBN,
		PublishedDate: published,
		Genre:         in.Genre,
		AuthorID:      in.AuthorID,
	})
	if errors.Is(err, entities.ErrDuplicateKey) {
		return nil, isbnConflict(valueOr(in.ISBN, current.ISBN))
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Entity: "book", ID: id}
	}
	return updated, nil
}

func (s *BookService) Remove(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.books.Remove(ctx, id)
}

func (s *BookService) FindManyWithPagination(ctx context.Context, q BookQuery) (pagination.Page[entities.Book], error) {
	params := q.Pagination.Normalize()
	items, err := s.books.FindManyWithPagination(ctx, q.Filter, params)
	if err != nil {
		return pagination.Page[entities.Book]{}, err
	}
	return pagination.NewPage(items, params), nil
}

func (s *BookService) requireAuthor(ctx context.Context, authorID string) error {
	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return &InvalidReferenceError{Field: "authorId", ID: authorID}
	}
	return nil
}

func isbnConflict(isbn string) error {
	return &AlreadyExistsError{Entity: "book", Key: "isbn", Value: isbn}
}
