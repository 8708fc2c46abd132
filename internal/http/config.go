package http

import (
	"github.com/mrlokans/catalog/internal/database"
)

// RouterConfig contains the dependencies needed to create the HTTP router.
type RouterConfig struct {
	AuthorService AuthorService
	BookService   BookService

	// Audit is optional. When nil, mutations are not recorded and the
	// audit endpoints are not registered.
	AuditLogger AuditLogger
	AuditReader AuditReader

	// TaskQueue is optional. When nil, the task endpoints are not registered.
	TaskQueue          TaskQueue
	AuditRetentionDays int

	Database *database.Database
	Version  string
}
