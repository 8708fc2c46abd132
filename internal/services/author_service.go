package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
)

const authorNameKey = "firstName+lastName"

// AuthorService enforces author name uniqueness and refuses to remove
// authors that still own books.
type AuthorService struct {
	authors AuthorRepository
	books   BookReferenceCounter
}

// NewAuthorService creates a new author service.
func NewAuthorService(authors AuthorRepository, books BookReferenceCounter) *AuthorService {
	return &AuthorService{authors: authors, books: books}
}

func (s *AuthorService) Create(ctx context.Context, in CreateAuthorInput) (*entities.Author, error) {
	existing, err := s.authors.FindByName(ctx, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nameConflict(in.FirstName, in.LastName)
	}

	created, err := s.authors.Create(ctx, &entities.Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
		BirthDate: in.BirthDate,
	})
	if errors.Is(err, entities.ErrDuplicateKey) {
		return nil, nameConflict(in.FirstName, in.LastName)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthorService) FindByID(ctx context.Context, id string) (*entities.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, &NotFoundError{Entity: "author", ID: id}
	}
	return author, nil
}

// Update merges the supplied fields over the current author.
func (s *AuthorService) Update(ctx context.Context, id string, in UpdateAuthorInput) (*entities.Author, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.authors.Update(ctx, id, in.changes())
	if errors.Is(err, entities.ErrDuplicateKey) {
		return nil, nameConflict(valueOr(in.FirstName, current.FirstName), valueOr(in.LastName, current.LastName))
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Entity: "author", ID: id}
	}
	return updated, nil
}

// Remove deletes the author unless books still reference it.
func (s *AuthorService) Remove(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.books.CountByAuthorID(ctx, id)
	if err != nil {
		return fmt.Errorf("count books for author: %w", err)
	}
	if count > 0 {
		return &ReferentialIntegrityError{Entity: "author", ID: id, Dependents: "books", Count: count}
	}

	return s.authors.Remove(ctx, id)
}

func (s *AuthorService) FindManyWithPagination(ctx context.Context, q AuthorQuery) (pagination.Page[entities.Author], error) {
	params := q.Pagination.Normalize()
	items, err := s.authors.FindManyWithPagination(ctx, q.Filter, params)
	if err != nil {
		return pagination.Page[entities.Author]{}, err
	}
	return pagination.NewPage(items, params), nil
}

func nameConflict(firstName, lastName string) error {
	return &AlreadyExistsError{Entity: "author", Key: authorNameKey, Value: firstName + " " + lastName}
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
