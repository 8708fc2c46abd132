package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

type catalog struct {
	authors *AuthorService
	books   *BookService
}

func setupCatalog(t *testing.T) catalog {
	t.Helper()
	dbPath := "./test_services_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath, database.Options{LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	return catalog{
		authors: NewAuthorService(authorRepo, bookRepo),
		books:   NewBookService(bookRepo, authorRepo),
	}
}

func TestCatalog_RowlingScenario(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	author, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "J.K.", LastName: "Rowling"})
	require.NoError(t, err)

	book, err := c.books.Create(ctx, CreateBookInput{
		Title:    "Harry Potter and the Philosopher's Stone",
		ISBN:     "9780747532699",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, book.Author)
	assert.Equal(t, author.ID, book.Author.ID)

	page, err := c.books.FindManyWithPagination(ctx, BookQuery{Filter: entities.BookFilter{AuthorID: author.ID}})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, book.ID, page.Data[0].ID)

	err = c.authors.Remove(ctx, author.ID)
	require.ErrorIs(t, err, ErrReferentialIntegrity)

	stillThere, err := c.authors.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, stillThere.ID)

	require.NoError(t, c.books.Remove(ctx, book.ID))
	require.NoError(t, c.authors.Remove(ctx, author.ID))

	_, err = c.authors.FindByID(ctx, author.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_DuplicateAuthorNameIgnoresCase(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	_, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "J.K.", LastName: "Rowling"})
	require.NoError(t, err)

	_, err = c.authors.Create(ctx, CreateAuthorInput{FirstName: "j.k.", LastName: "ROWLING"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	t.Run("accented names fold too", func(t *testing.T) {
		_, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "Émile", LastName: "Zola"})
		require.NoError(t, err)

		_, err = c.authors.Create(ctx, CreateAuthorInput{FirstName: "émile", LastName: "ZOLA"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestCatalog_UnknownAuthorPersistsNothing(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	_, err := c.books.Create(ctx, CreateBookInput{Title: "Orphan", ISBN: "000", AuthorID: "42"})
	require.ErrorIs(t, err, ErrInvalidReference)

	page, err := c.books.FindManyWithPagination(ctx, BookQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestCatalog_DuplicateISBN(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	author, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "Terry", LastName: "Pratchett"})
	require.NoError(t, err)
	first, err := c.books.Create(ctx, CreateBookInput{Title: "Mort", ISBN: "978-0552131063", AuthorID: author.ID})
	require.NoError(t, err)

	_, err = c.books.Create(ctx, CreateBookInput{Title: "Mort again", ISBN: "978-0552131063", AuthorID: author.ID})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	t.Run("changing isbn onto a taken one is caught by storage", func(t *testing.T) {
		second, err := c.books.Create(ctx, CreateBookInput{Title: "Guards! Guards!", ISBN: "978-0552134637", AuthorID: author.ID})
		require.NoError(t, err)

		_, err = c.books.Update(ctx, second.ID, UpdateBookInput{ISBN: strPtr(first.ISBN)})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestCatalog_EmptyUpdateLeavesRecordUnchanged(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	author, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "Mary", LastName: "Shelley", Bio: strPtr("Frankenstein")})
	require.NoError(t, err)
	book, err := c.books.Create(ctx, CreateBookInput{
		Title: "Frankenstein", ISBN: "978-0486282114", AuthorID: author.ID,
		PublishedDate: strPtr("1818-01-01"), Genre: strPtr("Gothic"),
	})
	require.NoError(t, err)

	sameAuthor, err := c.authors.Update(ctx, author.ID, UpdateAuthorInput{})
	require.NoError(t, err)
	assert.Equal(t, author, sameAuthor)

	sameBook, err := c.books.Update(ctx, book.ID, UpdateBookInput{})
	require.NoError(t, err)
	assert.Equal(t, book, sameBook)
}

func TestCatalog_LimitIsCapped(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	for i := 0; i < pagination.MaxLimit+1; i++ {
		_, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "Author", LastName: authors.FormatID(uint(i + 1))})
		require.NoError(t, err)
	}

	page, err := c.authors.FindManyWithPagination(ctx, AuthorQuery{Pagination: pagination.Params{Page: 1, Limit: 1000}})
	require.NoError(t, err)
	assert.Len(t, page.Data, pagination.MaxLimit)
	assert.Equal(t, pagination.MaxLimit, page.Limit)
	assert.True(t, page.HasNextPage)
}

func TestCatalog_SearchSemantics(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	tolkien, err := c.authors.Create(ctx, CreateAuthorInput{FirstName: "John", LastName: "Tolkien"})
	require.NoError(t, err)
	_, err = c.authors.Create(ctx, CreateAuthorInput{FirstName: "Clive", LastName: "Lewis"})
	require.NoError(t, err)
	_, err = c.books.Create(ctx, CreateBookInput{Title: "The Hobbit", ISBN: "111", AuthorID: tolkien.ID})
	require.NoError(t, err)

	t.Run("author terms are disjunctive", func(t *testing.T) {
		page, err := c.authors.FindManyWithPagination(ctx, AuthorQuery{
			Filter: entities.AuthorFilter{FirstName: "john", LastName: "lewis"},
		})
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
	})

	t.Run("book filters are conjunctive", func(t *testing.T) {
		page, err := c.books.FindManyWithPagination(ctx, BookQuery{
			Filter: entities.BookFilter{Title: "hobbit", ISBN: "999"},
		})
		require.NoError(t, err)
		assert.Empty(t, page.Data)

		page, err = c.books.FindManyWithPagination(ctx, BookQuery{
			Filter: entities.BookFilter{Title: "hobbit", ISBN: "11"},
		})
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})
}
