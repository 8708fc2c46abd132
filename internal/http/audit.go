package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

type listAuditQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Entity string `form:"entity" binding:"omitempty,oneof=author book"`
}

// AuditEventsResponse is one page of audit events.
type AuditEventsResponse struct {
	Data  []entities.AuditEvent `json:"data"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int64                 `json:"total"`
}

type AuditController struct {
	reader AuditReader
}

func NewAuditController(reader AuditReader) *AuditController {
	return &AuditController{reader: reader}
}

// List handles GET /api/v1/audit
func (ac *AuditController) List(c *gin.Context) {
	var q listAuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
		return
	}

	params := pagination.Params{Page: q.Page, Limit: q.Limit}.Normalize()
	events, total, err := ac.reader.GetEvents(c.Request.Context(), q.Entity, params.Limit, params.Offset())
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}

	c.JSON(http.StatusOK, AuditEventsResponse{
		Data:  events,
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	})
}

// History handles GET /api/v1/audit/:entity/:id
func (ac *AuditController) History(c *gin.Context) {
	entityType := c.Param("entity")
	if entityType != "author" && entityType != "book" {
		respondNotFound(c, "audit entity type")
		return
	}

	events, err := ac.reader.GetEntityHistory(c.Request.Context(), entityType, c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "entity history")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}
