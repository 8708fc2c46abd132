package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/pagination"
	"github.com/mrlokans/catalog/internal/services"
)

type seedBook struct {
	title     string
	isbn      string
	published string
	genre     string
}

type seedAuthor struct {
	firstName string
	lastName  string
	bio       string
	birthDate string
	books     []seedBook
}

var demoCatalog = []seedAuthor{
	{
		firstName: "J.K.", lastName: "Rowling", birthDate: "1965-07-31",
		bio: "British author of the Harry Potter series.",
		books: []seedBook{
			{"Harry Potter and the Philosopher's Stone", "9780747532699", "1997-06-26", "Fantasy"},
			{"Harry Potter and the Chamber of Secrets", "9780747538493", "1998-07-02", "Fantasy"},
		},
	},
	{
		firstName: "Ursula", lastName: "Le Guin", birthDate: "1929-10-21",
		bio: "American author of speculative fiction.",
		books: []seedBook{
			{"A Wizard of Earthsea", "9780547773742", "1968-01-01", "Fantasy"},
			{"The Left Hand of Darkness", "9780441478125", "1969-03-01", "Science Fiction"},
		},
	},
	{
		firstName: "Terry", lastName: "Pratchett", birthDate: "1948-04-28",
		books: []seedBook{
			{"Guards! Guards!", "9780062225757", "1989-11-01", "Fantasy"},
		},
	},
}

// SeedResult counts what Seed inserted and what already existed.
type SeedResult struct {
	AuthorsCreated int
	BooksCreated   int
	Skipped        int
}

// Seed inserts a small demo catalog through the services. Entries that
// already exist are skipped, so running it twice is harmless.
func Seed(ctx context.Context, catalog Catalog) (SeedResult, error) {
	var result SeedResult

	for _, sa := range demoCatalog {
		authorID, created, err := seedOneAuthor(ctx, catalog, sa)
		if err != nil {
			return result, err
		}
		if created {
			result.AuthorsCreated++
		} else {
			result.Skipped++
		}

		for _, sb := range sa.books {
			published, genre := sb.published, sb.genre
			_, err := catalog.Books.Create(ctx, services.CreateBookInput{
				Title:         sb.title,
				ISBN:          sb.isbn,
				PublishedDate: &published,
				Genre:         &genre,
				AuthorID:      authorID,
			})
			switch {
			case errors.Is(err, services.ErrAlreadyExists):
				result.Skipped++
			case err != nil:
				return result, err
			default:
				result.BooksCreated++
			}
		}
	}

	log.Info().
		Int("authors", result.AuthorsCreated).
		Int("books", result.BooksCreated).
		Int("skipped", result.Skipped).
		Msg("seeded catalog")
	return result, nil
}

func seedOneAuthor(ctx context.Context, catalog Catalog, sa seedAuthor) (string, bool, error) {
	in := services.CreateAuthorInput{FirstName: sa.firstName, LastName: sa.lastName}
	if sa.bio != "" {
		bio := sa.bio
		in.Bio = &bio
	}
	if sa.birthDate != "" {
		t, err := services.ParseDate(sa.birthDate)
		if err != nil {
			return "", false, err
		}
		in.BirthDate = &t
	}

	author, err := catalog.Authors.Create(ctx, in)
	if err == nil {
		return author.ID, true, nil
	}
	if !errors.Is(err, services.ErrAlreadyExists) {
		return "", false, err
	}

	page, err := catalog.Authors.FindManyWithPagination(ctx, services.AuthorQuery{
		Filter:     entities.AuthorFilter{LastName: sa.lastName},
		Pagination: pagination.Params{Limit: pagination.MaxLimit},
	})
	if err != nil {
		return "", false, err
	}
	for _, a := range page.Data {
		if strings.EqualFold(a.FirstName, sa.firstName) && strings.EqualFold(a.LastName, sa.lastName) {
			return a.ID, false, nil
		}
	}
	return "", false, fmt.Errorf("seed author %s %s: exists but not listed", sa.firstName, sa.lastName)
}
