package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

func createBook(t *testing.T, api *testAPI, title, isbn, authorID string) entities.Book {
	t.Helper()
	w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{
		"title":    title,
		"isbn":     isbn,
		"authorId": authorID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[entities.Book](t, w)
}

func TestBooksController_Create(t *testing.T) {
	t.Run("creates book with author resolved", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "Ursula", "Le Guin")

		w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{
			"title":         "The Dispossessed",
			"isbn":          "9780060512750",
			"authorId":      author.ID,
			"publishedDate": "1974-05-01",
			"genre":         "Science Fiction",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		book := decode[entities.Book](t, w)
		assert.Equal(t, author.ID, book.AuthorID)
		require.NotNil(t, book.Author)
		assert.Equal(t, "Le Guin", book.Author.LastName)
		require.NotNil(t, book.PublishedDate)
		assert.Equal(t, 1974, book.PublishedDate.Year())
		require.NotNil(t, book.Genre)
		assert.Equal(t, "Science Fiction", *book.Genre)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		api := setupTestAPI(t)

		w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{
			"title":    "Orphan",
			"isbn":     "111",
			"authorId": "999",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidReference, decode[ErrorResponse](t, w).Code)
	})

	t.Run("rejects duplicate isbn", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		createBook(t, api, "One", "222", author.ID)

		w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{
			"title":    "Two",
			"isbn":     "222",
			"authorId": author.ID,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, CodeAlreadyExists, decode[ErrorResponse](t, w).Code)
	})

	t.Run("reports every missing required field", func(t *testing.T) {
		api := setupTestAPI(t)

		w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "title is required")
		assert.Contains(t, body, "isbn is required")
		assert.Contains(t, body, "authorId is required")
	})

	t.Run("rejects malformed published date", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")

		w := api.do(t, http.MethodPost, "/api/v1/books", map[string]any{
			"title":         "Bad Date",
			"isbn":          "333",
			"authorId":      author.ID,
			"publishedDate": "yesterday",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "publishedDate")
	})
}

func TestBooksController_Get(t *testing.T) {
	t.Run("returns book", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		created := createBook(t, api, "Title", "444", author.ID)

		w := api.do(t, http.MethodGet, "/api/v1/books/"+created.ID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		book := decode[entities.Book](t, w)
		assert.Equal(t, "Title", book.Title)
		require.NotNil(t, book.Author)
	})

	t.Run("returns 404 for unknown book", func(t *testing.T) {
		api := setupTestAPI(t)

		w := api.do(t, http.MethodGet, "/api/v1/books/12345", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBooksController_List(t *testing.T) {
	t.Run("combines filters with AND", func(t *testing.T) {
		api := setupTestAPI(t)
		tolkien := createAuthor(t, api, "J.R.R.", "Tolkien")
		lewis := createAuthor(t, api, "C.S.", "Lewis")
		createBook(t, api, "The Hobbit", "9780547928227", tolkien.ID)
		createBook(t, api, "The Silmarillion", "9780618391110", tolkien.ID)
		createBook(t, api, "The Horse and His Boy", "9780064405010", lewis.ID)

		w := api.do(t, http.MethodGet, "/api/v1/books?title=the%20h&authorId="+tolkien.ID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		page := decode[pagination.Page[entities.Book]](t, w)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "The Hobbit", page.Data[0].Title)
	})

	t.Run("unknown author id yields empty page", func(t *testing.T) {
		api := setupTestAPI(t)

		w := api.do(t, http.MethodGet, "/api/v1/books?authorId=abc", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[pagination.Page[entities.Book]](t, w).Data)
	})

	t.Run("reports next page", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		createBook(t, api, "One", "1", author.ID)
		createBook(t, api, "Two", "2", author.ID)

		w := api.do(t, http.MethodGet, "/api/v1/books?limit=1&sort=title&order=desc", nil)

		page := decode[pagination.Page[entities.Book]](t, w)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Two", page.Data[0].Title)
		assert.True(t, page.HasNextPage)
	})
}

func TestBooksController_Update(t *testing.T) {
	t.Run("moves book to another author", func(t *testing.T) {
		api := setupTestAPI(t)
		first := createAuthor(t, api, "First", "Owner")
		second := createAuthor(t, api, "Second", "Owner")
		book := createBook(t, api, "Moving", "555", first.ID)

		w := api.do(t, http.MethodPatch, "/api/v1/books/"+book.ID, map[string]any{"authorId": second.ID})

		assert.Equal(t, http.StatusOK, w.Code)
		updated := decode[entities.Book](t, w)
		assert.Equal(t, second.ID, updated.AuthorID)
		assert.Equal(t, "Moving", updated.Title)
	})

	t.Run("rejects reassignment to unknown author", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		book := createBook(t, api, "Stuck", "666", author.ID)

		w := api.do(t, http.MethodPatch, "/api/v1/books/"+book.ID, map[string]any{"authorId": "31337"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidReference, decode[ErrorResponse](t, w).Code)
	})

	t.Run("returns 409 when isbn collides", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		createBook(t, api, "Taken", "777", author.ID)
		book := createBook(t, api, "Other", "888", author.ID)

		w := api.do(t, http.MethodPatch, "/api/v1/books/"+book.ID, map[string]any{"isbn": "777"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestBooksController_Delete(t *testing.T) {
	t.Run("removes book and frees its author", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "A", "B")
		book := createBook(t, api, "Gone", "999", author.ID)

		assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/api/v1/books/"+book.ID, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/books/"+book.ID, nil).Code)
		assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/api/v1/authors/"+author.ID, nil).Code)
	})

	t.Run("returns 404 for unknown book", func(t *testing.T) {
		api := setupTestAPI(t)

		w := api.do(t, http.MethodDelete, "/api/v1/books/1", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
