package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/services"
)

// Machine-readable error codes.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeInvalidReference     = "INVALID_REFERENCE"
	CodeReferentialIntegrity = "REFERENTIAL_INTEGRITY_VIOLATION"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeValidationFailed, Details: details})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("context", context).
		Msg("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternalError})
}

// respondServiceError maps a service error to its status code and body.
// Unclassified errors are treated as internal.
func respondServiceError(c *gin.Context, err error, context string) {
	status, body, ok := errorStatus(err)
	if !ok {
		respondInternalError(c, err, context)
		return
	}
	c.JSON(status, body)
}

// errorStatus classifies err. ok is false for errors that must not be
// shown to clients.
func errorStatus(err error) (int, ErrorResponse, bool) {
	var (
		notFound   *services.NotFoundError
		exists     *services.AlreadyExistsError
		invalidRef *services.InvalidReferenceError
		integrity  *services.ReferentialIntegrityError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{
			Error:   err.Error(),
			Code:    CodeNotFound,
			Details: gin.H{"entity": notFound.Entity, "id": notFound.ID},
		}, true
	case errors.As(err, &exists):
		return http.StatusConflict, ErrorResponse{
			Error:   err.Error(),
			Code:    CodeAlreadyExists,
			Details: gin.H{"entity": exists.Entity, "field": exists.Key, "value": exists.Value},
		}, true
	case errors.As(err, &invalidRef):
		return http.StatusBadRequest, ErrorResponse{
			Error:   err.Error(),
			Code:    CodeInvalidReference,
			Details: gin.H{"field": invalidRef.Field, "id": invalidRef.ID},
		}, true
	case errors.As(err, &integrity):
		return http.StatusConflict, ErrorResponse{
			Error: err.Error(),
			Code:  CodeReferentialIntegrity,
			Details: gin.H{
				"entity":     integrity.Entity,
				"id":         integrity.ID,
				"dependents": integrity.Dependents,
				"count":      integrity.Count,
			},
		}, true
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeValidationFailed}, true
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternalError}, false
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondNoContent sends a 204 No Content response.
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// requestInfo collects the audit attributes of the current request.
func requestInfo(c *gin.Context) audit.RequestInfo {
	return audit.RequestInfo{
		RequestID: c.GetString(requestIDKey),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
