package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

type mockAuthorRepository struct {
	mock.Mock
}

func (m *mockAuthorRepository) Create(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	args := m.Called(ctx, author)
	return authorOrNil(args.Get(0)), args.Error(1)
}

func (m *mockAuthorRepository) FindByID(ctx context.Context, id string) (*entities.Author, error) {
	args := m.Called(ctx, id)
	return authorOrNil(args.Get(0)), args.Error(1)
}

func (m *mockAuthorRepository) FindByName(ctx context.Context, firstName, lastName string) (*entities.Author, error) {
	args := m.Called(ctx, firstName, lastName)
	return authorOrNil(args.Get(0)), args.Error(1)
}

func (m *mockAuthorRepository) FindManyWithPagination(ctx context.Context, filter entities.AuthorFilter, params pagination.Params) ([]entities.Author, error) {
	args := m.Called(ctx, filter, params)
	items, _ := args.Get(0).([]entities.Author)
	return items, args.Error(1)
}

func (m *mockAuthorRepository) Update(ctx context.Context, id string, changes entities.AuthorChanges) (*entities.Author, error) {
	args := m.Called(ctx, id, changes)
	return authorOrNil(args.Get(0)), args.Error(1)
}

func (m *mockAuthorRepository) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, book)
	return bookOrNil(args.Get(0)), args.Error(1)
}

func (m *mockBookRepository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	args := m.Called(ctx, id)
	return bookOrNil(args.Get(0)), args.Error(1)
}

func (m *mockBookRepository) FindByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	args := m.Called(ctx, isbn)
	return bookOrNil(args.Get(0)), args.Error(1)
}

func (m *mockBookRepository) FindManyWithPagination(ctx context.Context, filter entities.BookFilter, params pagination.Params) ([]entities.Book, error) {
	args := m.Called(ctx, filter, params)
	items, _ := args.Get(0).([]entities.Book)
	return items, args.Error(1)
}

func (m *mockBookRepository) Update(ctx context.Context, id string, changes entities.BookChanges) (*entities.Book, error) {
	args := m.Called(ctx, id, changes)
	return bookOrNil(args.Get(0)), args.Error(1)
}

func (m *mockBookRepository) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookRepository) CountByAuthorID(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func authorOrNil(v any) *entities.Author {
	a, _ := v.(*entities.Author)
	return a
}

func bookOrNil(v any) *entities.Book {
	b, _ := v.(*entities.Book)
	return b
}

func strPtr(s string) *string { return &s }
