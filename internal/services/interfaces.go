package services

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

// AuthorRepository persists authors. Lookups return nil, nil when the author
// does not exist; duplicate names surface as entities.ErrDuplicateKey.
type AuthorRepository interface {
	Create(ctx context.Context, author *entities.Author) (*entities.Author, error)
	FindByID(ctx context.Context, id string) (*entities.Author, error)
	FindByName(ctx context.Context, firstName, lastName string) (*entities.Author, error)
	FindManyWithPagination(ctx context.Context, filter entities.AuthorFilter, params pagination.Params) ([]entities.Author, error)
	Update(ctx context.Context, id string, changes entities.AuthorChanges) (*entities.Author, error)
	Remove(ctx context.Context, id string) error
}

// BookReferenceCounter reports how many books point at an author.
// Use this interface when you only need to guard author removal.
type BookReferenceCounter interface {
	CountByAuthorID(ctx context.Context, authorID string) (int64, error)
}

// BookRepository persists books. Lookups return nil, nil when the book does
// not exist; duplicate ISBNs surface as entities.ErrDuplicateKey.
type BookRepository interface {
	BookReferenceCounter

	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)
	FindByID(ctx context.Context, id string) (*entities.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*entities.Book, error)
	FindManyWithPagination(ctx context.Context, filter entities.BookFilter, params pagination.Params) ([]entities.Book, error)
	Update(ctx context.Context, id string, changes entities.BookChanges) (*entities.Book, error)
	Remove(ctx context.Context, id string) error
}
