// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorRepository: author persistence (internal/services/interfaces.go)
//   - BookRepository: book persistence (internal/services/interfaces.go)
//   - BookReferenceCounter: counts books per author before author removal
//     (internal/services/interfaces.go)
//   - audit.Store: audit event persistence (internal/audit/service.go)
//
// ## HTTP Interfaces
//
//   - AuthorService, BookService: catalog operations used by controllers
//     (internal/http/stores.go)
//   - AuditLogger, AuditReader: audit trail recording and listing
//     (internal/http/stores.go)
//
// ## Background Job Interfaces
//
//   - AuditEventCleaner: retention cleanup target (internal/tasks/cleanup_audit.go)
//   - CleanupRunner: queued or inline cleanup trigger (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Catalog Entity
//
// To add a new entity (e.g., publishers):
//
//  1. Define the domain type in internal/entities/ with no storage tags.
//
//  2. Create sub-package internal/database/publishers/ with a Record, a
//     mapper and a repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the repository interface the service needs in
//     internal/services/interfaces.go and implement the service there.
//
//  4. Register the migration in database.Migrate.
//
//  5. Add a controller in internal/http/ and register its routes in router.go.
//
//  6. Add compile-time checks:
//
//     var _ services.PublisherRepository = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
