package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
	"github.com/mrlokans/catalog/internal/services"
)

type createAuthorRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=255"`
	LastName  string  `json:"lastName" binding:"required,max=255"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birthDate" binding:"omitempty,date"`
}

type updateAuthorRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=255"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=255"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birthDate" binding:"omitempty,date"`
}

type listAuthorsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Sort      string `form:"sort" binding:"omitempty,oneof=createdAt updatedAt firstName lastName birthDate"`
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
}

type AuthorsController struct {
	authors AuthorService
	audit   AuditLogger
}

// NewAuthorsController creates the author endpoints. auditLogger may be nil.
func NewAuthorsController(authors AuthorService, auditLogger AuditLogger) *AuthorsController {
	return &AuthorsController{authors: authors, audit: auditLogger}
}

// Create handles POST /api/v1/authors
func (ac *AuthorsController) Create(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	birthDate, err := optionalDate(req.BirthDate)
	if err != nil {
		respondServiceError(c, err, "create author")
		return
	}

	author, err := ac.authors.Create(c.Request.Context(), services.CreateAuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		BirthDate: birthDate,
	})
	if err != nil {
		respondServiceError(c, err, "create author")
		return
	}

	if ac.audit != nil {
		ac.audit.LogCreate(requestInfo(c), "author", author.ID, "Created author: "+authorName(author), author)
	}
	respondCreated(c, author)
}

// List handles GET /api/v1/authors
func (ac *AuthorsController) List(c *gin.Context) {
	var q listAuthorsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	page, err := ac.authors.FindManyWithPagination(c.Request.Context(), services.AuthorQuery{
		Filter: entities.AuthorFilter{
			Search:    q.Search,
			FirstName: q.FirstName,
			LastName:  q.LastName,
			SortBy:    q.Sort,
			SortDesc:  q.Order == "desc",
		},
		Pagination: pagination.Params{Page: q.Page, Limit: q.Limit},
	})
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	author, err := ac.authors.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Update handles PATCH /api/v1/authors/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	var req updateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	birthDate, err := optionalDate(req.BirthDate)
	if err != nil {
		respondServiceError(c, err, "update author")
		return
	}

	author, err := ac.authors.Update(c.Request.Context(), c.Param("id"), services.UpdateAuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		BirthDate: birthDate,
	})
	if err != nil {
		respondServiceError(c, err, "update author")
		return
	}

	if ac.audit != nil {
		ac.audit.LogUpdate(requestInfo(c), "author", author.ID, "Updated author: "+authorName(author), author)
	}
	c.JSON(http.StatusOK, author)
}

// Delete handles DELETE /api/v1/authors/:id
func (ac *AuthorsController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ac.authors.Remove(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete author")
		return
	}

	if ac.audit != nil {
		ac.audit.LogDelete(requestInfo(c), "author", id, "Deleted author "+id)
	}
	respondNoContent(c)
}

func authorName(a *entities.Author) string {
	return a.FirstName + " " + a.LastName
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := services.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
