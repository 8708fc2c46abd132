package books

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/sqlerr"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"title":         "title",
	"isbn":          "isbn",
	"publishedDate": "published_date",
}

// Repository handles book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a book and returns it with its author resolved.
func (r *Repository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	rec, err := ToRecord(*book)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	rec.ID = 0
	rec.Author = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("create book: %w: %w", entities.ErrDuplicateKey, err)
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	return r.findByPK(ctx, rec.ID)
}

// FindByID returns the book with its author, or nil when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	pk, err := authors.ParseID(id)
	if err != nil {
		return nil, nil
	}
	return r.findByPK(ctx, pk)
}

// FindByISBN returns the book with the given ISBN, or nil.
func (r *Repository) FindByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	var rec Record
	err := r.db.WithContext(ctx).Preload("Author").Where("isbn = ?", isbn).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by isbn: %w", err)
	}

	book := ToEntity(rec)
	return &book, nil
}

// FindManyWithPagination lists books matching all of the supplied filters.
func (r *Repository) FindManyWithPagination(ctx context.Context, filter entities.BookFilter, params pagination.Params) ([]entities.Book, error) {
	params = params.Normalize()
	query := r.db.WithContext(ctx).Model(&Record{}).Preload("Author")

	if s := strings.TrimSpace(filter.Title); s != "" {
		query = query.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, sqlerr.Contains(s))
	}
	if s := strings.TrimSpace(filter.ISBN); s != "" {
		query = query.Where(`LOWER(isbn) LIKE LOWER(?) ESCAPE '\'`, sqlerr.Contains(s))
	}
	if s := strings.TrimSpace(filter.AuthorID); s != "" {
		authorID, err := authors.ParseID(s)
		if err != nil {
			return []entities.Book{}, nil
		}
		query = query.Where("author_id = ?", authorID)
	}

	column, desc := "created_at", true
	if c, ok := sortColumns[filter.SortBy]; ok {
		column, desc = c, filter.SortDesc
	}

	var records []Record
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	result := make([]entities.Book, 0, len(records))
	for _, rec := range records {
		result = append(result, ToEntity(rec))
	}
	return result, nil
}

// Update applies the non-nil fields of changes. It returns nil when the book
// does not exist.
func (r *Repository) Update(ctx context.Context, id string, changes entities.BookChanges) (*entities.Book, error) {
	pk, err := authors.ParseID(id)
	if err != nil {
		return nil, nil
	}
	if changes.IsEmpty() {
		return r.findByPK(ctx, pk)
	}

	values := map[string]any{}
	if changes.Title != nil {
		values["title"] = *changes.Title
	}
	if changes.ISBN != nil {
		values["isbn"] = *changes.ISBN
	}
	if changes.PublishedDate != nil {
		values["published_date"] = authors.NullTime(changes.PublishedDate)
	}
	if changes.Genre != nil {
		values["genre"] = authors.NullString(changes.Genre)
	}
	if changes.AuthorID != nil {
		authorID, err := authors.ParseID(*changes.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("update book: %w", err)
		}
		values["author_id"] = authorID
	}

	result := r.db.WithContext(ctx).Model(&Record{ID: pk}).Omit(clause.Associations).Updates(values)
	if result.Error != nil {
		if sqlerr.IsUniqueViolation(result.Error) {
			return nil, fmt.Errorf("update book: %w: %w", entities.ErrDuplicateKey, result.Error)
		}
		return nil, fmt.Errorf("update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.findByPK(ctx, pk)
}

// Remove deletes the book permanently. Removing a missing book is not an error.
func (r *Repository) Remove(ctx context.Context, id string) error {
	pk, err := authors.ParseID(id)
	if err != nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&Record{}, pk).Error; err != nil {
		return fmt.Errorf("remove book: %w", err)
	}
	return nil
}

// CountByAuthorID returns how many books reference the author.
func (r *Repository) CountByAuthorID(ctx context.Context, authorID string) (int64, error) {
	pk, err := authors.ParseID(authorID)
	if err != nil {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Record{}).Where("author_id = ?", pk).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count books by author: %w", err)
	}
	return count, nil
}

func (r *Repository) findByPK(ctx context.Context, pk uint) (*entities.Book, error) {
	var rec Record
	err := r.db.WithContext(ctx).Preload("Author").First(&rec, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	book := ToEntity(rec)
	return &book, nil
}
