package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
)

func setupHealthTestDB(t *testing.T) *database.Database {
	t.Helper()

	dbPath := "./test_health_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath, database.Options{LogLevel: "silent"})
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

func serveHealth(controller *HealthController) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		db := setupHealthTestDB(t)

		w := serveHealth(NewHealthController(db, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "ok", response.Checks["catalog"])
		require.NotNil(t, response.Catalog)
		assert.Equal(t, database.CatalogStats{}, *response.Catalog)
		assert.Contains(t, response.Time, "T")
	})

	t.Run("reports catalog size", func(t *testing.T) {
		api := setupTestAPI(t)
		author := createAuthor(t, api, "Octavia", "Butler")
		createAuthor(t, api, "Samuel", "Delany")
		createBook(t, api, "Kindred", "978-0807083697", author.ID)

		w := api.do(t, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode[HealthResponse](t, w)
		require.NotNil(t, response.Catalog)
		assert.Equal(t, int64(2), response.Catalog.Authors)
		assert.Equal(t, int64(1), response.Catalog.Books)
	})

	t.Run("returns unhealthy when catalog cannot be counted", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.DB.Exec("DROP TABLE books").Error)

		w := serveHealth(NewHealthController(db, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Contains(t, response.Checks["catalog"], "count books")
		assert.Nil(t, response.Catalog)
	})

	t.Run("reports missing database", func(t *testing.T) {
		w := serveHealth(NewHealthController(nil, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not configured", response.Checks["database"])
		assert.Nil(t, response.Catalog)
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.Close())

		w := serveHealth(NewHealthController(db, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error")
	})

	t.Run("omits empty version", func(t *testing.T) {
		w := serveHealth(NewHealthController(nil, ""))

		assert.NotContains(t, w.Body.String(), "version")
	})
}

func TestRouter_Ping(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestRouter_NoRoute(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/shelves", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, decode[ErrorResponse](t, w).Code)
}
