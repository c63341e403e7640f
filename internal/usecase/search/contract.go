package search

import (
	"github.com/medcloud/rxdex/internal/domain"
	"github.com/medcloud/rxdex/internal/index"
)

// Catalog reads loaded medications.
type Catalog interface {
	Ready() error
	GetByID(id string) (domain.Medication, error)
}

// TermIndex looks up postings and candidate terms in the inverted index.
type TermIndex interface {
	LookupExact(term string) []index.Posting
	PrefixTerms(prefix string) []string
	FuzzyTerms(term string, maxDist int) []index.TermMatch
}
