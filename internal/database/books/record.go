// Package books persists catalog books with gorm.
//
// Books reference their author by AuthorID. The schema carries no foreign
// key constraint; referential rules are enforced by the catalog services.
package books

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/database/authors"
)

// Record is the storage shape of a book.
type Record struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"not null;size:500"`
	ISBN          string `gorm:"column:isbn;not null;size:32;uniqueIndex:idx_books_isbn"`
	PublishedDate sql.NullTime
	Genre         sql.NullString  `gorm:"size:100"`
	AuthorID      uint            `gorm:"not null;index"`
	Author        *authors.Record `gorm:"foreignKey:AuthorID"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time
}

func (Record) TableName() string {
	return "books"
}

// Migrate creates or upgrades the books table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}
	return nil
}
