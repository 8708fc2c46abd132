// Package authors persists catalog authors with gorm.
//
// Author names are unique among non-deleted rows, compared case-insensitively.
// Each name is stored next to a Unicode case-folded key (see NameKey). The
// partial unique index created by Migrate covers the keys of non-deleted
// rows, so a soft-deleted author's name can be reused.
package authors

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Record is the storage shape of an author.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null;size:255"`
	LastName  string `gorm:"not null;size:255"`
	// Case-folded copies of the names, written only through NameKey.
	FirstNameKey string         `gorm:"not null;default:'';size:255"`
	LastNameKey  string         `gorm:"not null;default:'';size:255"`
	Bio          sql.NullString `gorm:"type:text"`
	BirthDate    sql.NullTime
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Record) TableName() string {
	return "authors"
}

const (
	nameIndex = "idx_authors_name_key_active"
	// legacyNameIndex folded names with SQLite LOWER(), which is ASCII only.
	legacyNameIndex = "idx_authors_name_active"
)

const nameIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS ` + nameIndex + `
ON authors (first_name_key, last_name_key)
WHERE deleted_at IS NULL`

// NameKey returns the comparison form of a name: Unicode simple case
// folding, so "ÉMILE" and "émile" share a key. A Caser holds state, so each
// call gets its own.
func NameKey(name string) string {
	return cases.Fold().String(name)
}

// Migrate creates or upgrades the authors table and its name index.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("DROP INDEX IF EXISTS " + legacyNameIndex).Error; err != nil {
		return fmt.Errorf("drop legacy authors name index: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate authors: %w", err)
	}
	if err := backfillNameKeys(db); err != nil {
		return err
	}
	if err := db.Exec(nameIndexSQL).Error; err != nil {
		return fmt.Errorf("create authors name index: %w", err)
	}
	return nil
}

// backfillNameKeys fills the keys of rows written before the key columns
// existed, soft-deleted rows included.
func backfillNameKeys(db *gorm.DB) error {
	var records []Record
	err := db.Unscoped().
		Select("id", "first_name", "last_name").
		Where("first_name_key = '' OR last_name_key = ''").
		Find(&records).Error
	if err != nil {
		return fmt.Errorf("load authors without name keys: %w", err)
	}

	for _, rec := range records {
		err := db.Unscoped().Model(&Record{ID: rec.ID}).UpdateColumns(map[string]any{
			"first_name_key": NameKey(rec.FirstName),
			"last_name_key":  NameKey(rec.LastName),
		}).Error
		if err != nil {
			return fmt.Errorf("backfill author %d name keys: %w", rec.ID, err)
		}
	}
	return nil
}
