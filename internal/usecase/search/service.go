// Package search implements weighted full-text search over the medication
// catalog: query tokenization, exact/prefix/fuzzy term expansion, scoring,
// facet filtering, and pagination.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medcloud/rxdex/internal/domain"
	"github.com/medcloud/rxdex/internal/domain/search/request"
	"github.com/medcloud/rxdex/internal/domain/search/result"
	"github.com/medcloud/rxdex/internal/index"
	"github.com/medcloud/rxdex/internal/metrics"
)

// Tuning defaults. Weights and ratio are configurable; these apply when the
// config leaves them unset.
const (
	DefaultFuzzyRatio  = 0.2
	DefaultMaxPageSize = 100
)

// DefaultFieldWeights boosts the name fields over the ingredient list.
func DefaultFieldWeights() map[string]float64 {
	return map[string]float64{
		"brand_name":   2,
		"generic_name": 2,
		"ingredients":  1,
	}
}

// Page is one page of ranked, filtered search results. Total counts matches
// after facet filtering and before pagination.
type Page struct {
	Results  []result.Result
	Total    int
	Page     int
	PageSize int
}

// Service answers catalog search requests. Stateless per call; all state
// lives in the immutable catalog and index built at startup.
type Service struct {
	catalog     Catalog
	idx         TermIndex
	weights     map[string]float64
	fuzzyRatio  float64
	maxPageSize int
}

// New creates a search service.
func New(catalog Catalog, idx TermIndex, weights map[string]float64, fuzzyRatio float64) *Service {
	if len(weights) == 0 {
		weights = DefaultFieldWeights()
	}
	if fuzzyRatio <= 0 {
		fuzzyRatio = DefaultFuzzyRatio
	}
	return &Service{
		catalog:     catalog,
		idx:         idx,
		weights:     weights,
		fuzzyRatio:  fuzzyRatio,
		maxPageSize: DefaultMaxPageSize,
	}
}

// WithMaxPageSize overrides the page size cap.
func (s *Service) WithMaxPageSize(max int) *Service {
	if max > 0 {
		s.maxPageSize = max
	}
	return s
}

// Search runs a validated request against the catalog. A well-formed query
// that matches nothing is a success with Total 0, not an error.
func (s *Service) Search(_ context.Context, req request.Request) (Page, error) {
	start := time.Now()

	if err := s.catalog.Ready(); err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		return Page{}, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	pageSize := req.PageSize()
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	page := Page{
		Results:  []result.Result{},
		Page:     req.Page(),
		PageSize: pageSize,
	}

	// A query of pure separators tokenizes to nothing and matches nothing.
	tokens := index.Tokenize(req.Query())
	if len(tokens) == 0 {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		return page, nil
	}

	ranked := rank(s.idx, tokens, s.weights, s.fuzzyRatio)

	// Facet post-filter narrows the ranked list without reordering it.
	filtered := make([]result.Result, 0, len(ranked))
	for _, cand := range ranked {
		med, err := s.catalog.GetByID(cand.id)
		if err != nil {
			return Page{}, fmt.Errorf("resolve ranked document %s: %w", cand.id, err)
		}
		if req.DosageForm() != "" && !strings.EqualFold(med.DosageForm, req.DosageForm()) {
			continue
		}
		filtered = append(filtered, result.New(med, cand.score))
	}

	page.Total = len(filtered)

	startIdx := (req.Page() - 1) * pageSize
	if startIdx < len(filtered) {
		endIdx := startIdx + pageSize
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}
		page.Results = filtered[startIdx:endIdx]
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	return page, nil
}
