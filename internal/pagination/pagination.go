// Package pagination normalizes page/limit parameters and wraps list
// results with a "next page" signal.
package pagination

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 50
	// MaxPage keeps Offset within int32 for any limit. Pages past it are
	// clamped and come back empty on any realistic catalog.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Params is a page-based window over an ordered result set. Pages start at 1.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps Page to [1, MaxPage] and Limit to [1, MaxLimit]. A
// non-positive Limit falls back to DefaultLimit.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of records to skip.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Page is one window of results.
type Page[T any] struct {
	Data        []T  `json:"data"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
}

// NewPage wraps items fetched with params. HasNextPage is derived from the
// returned count alone: a full page means another page may exist.
func NewPage[T any](items []T, params Params) Page[T] {
	params = params.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data:        items,
		Page:        params.Page,
		Limit:       params.Limit,
		HasNextPage: len(items) == params.Limit,
	}
}
