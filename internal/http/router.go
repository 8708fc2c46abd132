package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidations()

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware())
	router.Use(RecoveryMiddleware())

	var store CatalogStore
	if cfg.Database != nil {
		store = cfg.Database
	}
	health := NewHealthController(store, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")

	authorsController := NewAuthorsController(cfg.AuthorService, cfg.AuditLogger)
	authors := api.Group("/authors")
	authors.POST("", authorsController.Create)
	authors.GET("", authorsController.List)
	authors.GET("/:id", authorsController.Get)
	authors.PATCH("/:id", authorsController.Update)
	authors.DELETE("/:id", authorsController.Delete)

	booksController := NewBooksController(cfg.BookService, cfg.AuditLogger)
	books := api.Group("/books")
	books.POST("", booksController.Create)
	books.GET("", booksController.List)
	books.GET("/:id", booksController.Get)
	books.PATCH("/:id", booksController.Update)
	books.DELETE("/:id", booksController.Delete)

	if cfg.AuditReader != nil {
		auditController := NewAuditController(cfg.AuditReader)
		api.GET("/audit", auditController.List)
		api.GET("/audit/:entity/:id", auditController.History)
	}

	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue, cfg.AuditRetentionDays)
		api.POST("/tasks/audit-cleanup", tasksController.RunAuditCleanup)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found", Code: CodeNotFound})
	})

	return router
}
