// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── authors/         # Author records, mapper and repository
//	├── books/           # Book records, mapper and repository
//	├── audit/           # Audit event storage
//	└── sqlerr/          # SQLite error classification, LIKE escaping
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over a shared *gorm.DB:
//
//	db, err := database.NewDatabase("./catalog.db", database.Options{})
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.FindByID(ctx, "1")
//
// Repositories translate between records and entities through their mapper
// and never enforce cross-entity rules. Those live in internal/services.
//
// # Identifiers
//
// Records use auto-increment integer keys. Entities carry them as decimal
// strings; authors.ParseID and authors.FormatID are the only conversion
// points. A string that is not a valid key is treated as an absent row.
package database
