package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
	"github.com/mrlokans/catalog/internal/services"
)

type createBookRequest struct {
	Title         string  `json:"title" binding:"required,max=500"`
	ISBN          string  `json:"isbn" binding:"required,max=32"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,date"`
	Genre         *string `json:"genre" binding:"omitempty,max=100"`
	AuthorID      string  `json:"authorId" binding:"required"`
}

type updateBookRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=500"`
	ISBN          *string `json:"isbn" binding:"omitempty,min=1,max=32"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,date"`
	Genre         *string `json:"genre" binding:"omitempty,max=100"`
	AuthorID      *string `json:"authorId" binding:"omitempty,min=1"`
}

type listBooksQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
	Title    string `form:"title"`
	ISBN     string `form:"isbn"`
	AuthorID string `form:"authorId"`
	Sort     string `form:"sort" binding:"omitempty,oneof=createdAt updatedAt title isbn publishedDate"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

type BooksController struct {
	books BookService
	audit AuditLogger
}

// NewBooksController creates the book endpoints. auditLogger may be nil.
func NewBooksController(books BookService, auditLogger AuditLogger) *BooksController {
	return &BooksController{books: books, audit: auditLogger}
}

// Create handles POST /api/v1/books
func (bc *BooksController) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	book, err := bc.books.Create(c.Request.Context(), services.CreateBookInput{
		Title:         req.Title,
		ISBN:          req.ISBN,
		PublishedDate: req.PublishedDate,
		Genre:         req.Genre,
		AuthorID:      req.AuthorID,
	})
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}

	if bc.audit != nil {
		bc.audit.LogCreate(requestInfo(c), "book", book.ID, "Created book: "+book.Title, book)
	}
	respondCreated(c, book)
}

// List handles GET /api/v1/books
func (bc *BooksController) List(c *gin.Context) {
	var q listBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	page, err := bc.books.FindManyWithPagination(c.Request.Context(), services.BookQuery{
		Filter: entities.BookFilter{
			Title:    q.Title,
			ISBN:     q.ISBN,
			AuthorID: q.AuthorID,
			SortBy:   q.Sort,
			SortDesc: q.Order == "desc",
		},
		Pagination: pagination.Params{Page: q.Page, Limit: q.Limit},
	})
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/books/:id
func (bc *BooksController) Get(c *gin.Context) {
	book, err := bc.books.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update handles PATCH /api/v1/books/:id
func (bc *BooksController) Update(c *gin.Context) {
	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	book, err := bc.books.Update(c.Request.Context(), c.Param("id"), services.UpdateBookInput{
		Title:         req.Title,
		ISBN:          req.ISBN,
		PublishedDate: req.PublishedDate,
		Genre:         req.Genre,
		AuthorID:      req.AuthorID,
	})
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}

	if bc.audit != nil {
		bc.audit.LogUpdate(requestInfo(c), "book", book.ID, "Updated book: "+book.Title, book)
	}
	c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/v1/books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := bc.books.Remove(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}

	if bc.audit != nil {
		bc.audit.LogDelete(requestInfo(c), "book", id, "Deleted book "+id)
	}
	respondNoContent(c)
}
