// Package sqlerr classifies errors raised by the SQLite storage engine.
package sqlerr

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err was caused by a unique or primary
// key constraint. gorm only translates errors raised through its own
// statements, so raw driver errors are checked as well.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// EscapeLike escapes LIKE wildcards so user input is matched literally.
// Queries using the result must declare ESCAPE '\'.
func EscapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Contains builds a LIKE pattern matching s anywhere in a column.
func Contains(s string) string {
	return "%" + EscapeLike(s) + "%"
}
