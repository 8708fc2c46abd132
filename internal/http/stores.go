package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
	"github.com/mrlokans/catalog/internal/services"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// AuthorService manages authors.
type AuthorService interface {
	Create(ctx context.Context, in services.CreateAuthorInput) (*entities.Author, error)
	FindByID(ctx context.Context, id string) (*entities.Author, error)
	Update(ctx context.Context, id string, in services.UpdateAuthorInput) (*entities.Author, error)
	Remove(ctx context.Context, id string) error
	FindManyWithPagination(ctx context.Context, q services.AuthorQuery) (pagination.Page[entities.Author], error)
}

// BookService manages books.
type BookService interface {
	Create(ctx context.Context, in services.CreateBookInput) (*entities.Book, error)
	FindByID(ctx context.Context, id string) (*entities.Book, error)
	Update(ctx context.Context, id string, in services.UpdateBookInput) (*entities.Book, error)
	Remove(ctx context.Context, id string) error
	FindManyWithPagination(ctx context.Context, q services.BookQuery) (pagination.Page[entities.Book], error)
}

// AuditLogger records successful catalog mutations.
type AuditLogger interface {
	LogCreate(info audit.RequestInfo, entityType, entityID, description string, snapshot any)
	LogUpdate(info audit.RequestInfo, entityType, entityID, description string, snapshot any)
	LogDelete(info audit.RequestInfo, entityType, entityID, description string)
}

// AuditReader lists recorded audit events.
type AuditReader interface {
	GetEvents(ctx context.Context, entityType string, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEntityHistory(ctx context.Context, entityType, entityID string) ([]entities.AuditEvent, error)
}

// TaskQueue enqueues maintenance tasks and reports their progress.
type TaskQueue interface {
	EnqueueAuditCleanup(ctx context.Context, retentionDays int) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}
