package authors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/database/sqlerr"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

// sortColumns maps the public sort keys to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"firstName": "first_name",
	"lastName":  "last_name",
	"birthDate": "birth_date",
}

// Repository handles author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an author and returns it as stored. Storage assigns the
// ID and timestamps.
func (r *Repository) Create(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	rec, err := ToRecord(*author)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	rec.ID = 0

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("create author: %w: %w", entities.ErrDuplicateKey, err)
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	return r.FindByID(ctx, FormatID(rec.ID))
}

// FindByID returns the author or nil when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*entities.Author, error) {
	pk, err := ParseID(id)
	if err != nil {
		return nil, nil
	}

	var rec Record
	err = r.db.WithContext(ctx).First(&rec, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by id: %w", err)
	}

	author := ToEntity(rec)
	return &author, nil
}

// FindByName looks up an author by exact name, ignoring case.
func (r *Repository) FindByName(ctx context.Context, firstName, lastName string) (*entities.Author, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("first_name_key = ? AND last_name_key = ?", NameKey(firstName), NameKey(lastName)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by name: %w", err)
	}

	author := ToEntity(rec)
	return &author, nil
}

// FindManyWithPagination lists authors matching any of the supplied terms.
func (r *Repository) FindManyWithPagination(ctx context.Context, filter entities.AuthorFilter, params pagination.Params) ([]entities.Author, error) {
	params = params.Normalize()
	query := r.db.WithContext(ctx).Model(&Record{})

	var conds []string
	var args []any
	if s := strings.TrimSpace(filter.Search); s != "" {
		conds = append(conds, `first_name_key LIKE ? ESCAPE '\' OR last_name_key LIKE ? ESCAPE '\'`)
		args = append(args, sqlerr.Contains(NameKey(s)), sqlerr.Contains(NameKey(s)))
	}
	if s := strings.TrimSpace(filter.FirstName); s != "" {
		conds = append(conds, `first_name_key LIKE ? ESCAPE '\'`)
		args = append(args, sqlerr.Contains(NameKey(s)))
	}
	if s := strings.TrimSpace(filter.LastName); s != "" {
		conds = append(conds, `last_name_key LIKE ? ESCAPE '\'`)
		args = append(args, sqlerr.Contains(NameKey(s)))
	}
	if len(conds) > 0 {
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var records []Record
	err := orderBy(query, filter.SortBy, filter.SortDesc).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	result := make([]entities.Author, 0, len(records))
	for _, rec := range records {
		result = append(result, ToEntity(rec))
	}
	return result, nil
}

// Update applies the non-nil fields of changes. It returns nil when the
// author does not exist.
func (r *Repository) Update(ctx context.Context, id string, changes entities.AuthorChanges) (*entities.Author, error) {
	pk, err := ParseID(id)
	if err != nil {
		return nil, nil
	}
	if changes.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	values := map[string]any{}
	if changes.FirstName != nil {
		values["first_name"] = *changes.FirstName
		values["first_name_key"] = NameKey(*changes.FirstName)
	}
	if changes.LastName != nil {
		values["last_name"] = *changes.LastName
		values["last_name_key"] = NameKey(*changes.LastName)
	}
	if changes.Bio != nil {
		values["bio"] = NullString(changes.Bio)
	}
	if changes.BirthDate != nil {
		values["birth_date"] = NullTime(changes.BirthDate)
	}

	result := r.db.WithContext(ctx).Model(&Record{ID: pk}).Updates(values)
	if result.Error != nil {
		if sqlerr.IsUniqueViolation(result.Error) {
			return nil, fmt.Errorf("update author: %w: %w", entities.ErrDuplicateKey, result.Error)
		}
		return nil, fmt.Errorf("update author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Remove soft-deletes the author. Removing a missing author is not an error.
func (r *Repository) Remove(ctx context.Context, id string) error {
	pk, err := ParseID(id)
	if err != nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&Record{}, pk).Error; err != nil {
		return fmt.Errorf("remove author: %w", err)
	}
	return nil
}

func orderBy(query *gorm.DB, sortBy string, desc bool) *gorm.DB {
	column, ok := sortColumns[sortBy]
	if !ok {
		column, desc = "created_at", true
	}
	return query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
}
