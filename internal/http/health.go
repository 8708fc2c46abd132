package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/database"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse reports reachability of the store and the catalog size.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Time    string                 `json:"time"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]string      `json:"checks"`
	Catalog *database.CatalogStats `json:"catalog,omitempty"`
}

// CatalogStore is what the health endpoint needs from the database.
type CatalogStore interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (database.CatalogStats, error)
}

type HealthController struct {
	store   CatalogStore
	version string
}

func NewHealthController(store CatalogStore, version string) *HealthController {
	return &HealthController{
		store:   store,
		version: version,
	}
}

// Status answers 200 when the database is reachable and the catalog tables
// can be counted, 503 otherwise.
func (h *HealthController) Status(c *gin.Context) {
	health := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  make(map[string]string),
	}

	if h.store == nil {
		health.Checks["database"] = "not configured"
		c.JSON(http.StatusOK, health)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		health.Checks["database"] = "error: " + err.Error()
		health.Status = "unhealthy"
	} else {
		health.Checks["database"] = "ok"
		if stats, err := h.store.Stats(ctx); err != nil {
			health.Checks["catalog"] = "error: " + err.Error()
			health.Status = "unhealthy"
		} else {
			health.Checks["catalog"] = "ok"
			health.Catalog = &stats
		}
	}

	statusCode := http.StatusOK
	if health.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, health)
}
