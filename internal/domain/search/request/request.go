// Package request defines the validated search request value type.
package request

import (
	"fmt"
	"strings"

	"github.com/medcloud/rxdex/internal/domain"
)

// Defaults and limits for search parameters.
const (
	MaxQueryLength  = 1024
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Request is a validated search query. Page and PageSize carry their
// defaults when the caller omitted them; a caller-supplied non-positive
// value is rejected rather than clamped.
type Request struct {
	query      string
	page       int
	pageSize   int
	dosageForm string
}

// New validates and normalizes search parameters. page and pageSize are nil
// when absent from the request.
func New(query string, page, pageSize *int, dosageForm string) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrValidation, MaxQueryLength)
	}

	p := DefaultPage
	if page != nil {
		if *page < 1 {
			return Request{}, fmt.Errorf("%w: page must be positive, got %d", domain.ErrValidation, *page)
		}
		p = *page
	}

	ps := DefaultPageSize
	if pageSize != nil {
		if *pageSize < 1 {
			return Request{}, fmt.Errorf("%w: page_size must be positive, got %d", domain.ErrValidation, *pageSize)
		}
		ps = *pageSize
	}

	return Request{
		query:      query,
		page:       p,
		pageSize:   ps,
		dosageForm: dosageForm,
	}, nil
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }

// DosageForm returns the facet filter value, empty when unset.
func (r *Request) DosageForm() string { return r.dosageForm }
