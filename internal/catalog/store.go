// Package catalog holds the deduplicated medication set and its inverted
// index. The store loads one snapshot at startup and is read-only for the
// rest of the process lifetime; a failed load is remembered and reported on
// every subsequent call rather than retried.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medcloud/rxdex/internal/catalog/source"
	"github.com/medcloud/rxdex/internal/domain"
	"github.com/medcloud/rxdex/internal/index"
	"github.com/medcloud/rxdex/internal/metrics"
)

// Indexed field names. Field weights in the search config refer to these.
const (
	FieldBrandName   = "brand_name"
	FieldGenericName = "generic_name"
	FieldIngredients = "ingredients"
)

// Store is the immutable medication catalog plus its index.
type Store struct {
	byID map[string]domain.Medication
	idx  *index.Index

	dosageForms []string

	err error
}

// Load fetches, deduplicates, and indexes the catalog snapshot. A structural
// failure (unreadable source, malformed JSON, empty catalog, record without
// a product code) leaves the store in a permanent failed state; no partial
// index is kept.
func Load(ctx context.Context, src source.Source, logger *zap.Logger) *Store {
	s := &Store{
		byID: make(map[string]domain.Medication),
		idx:  index.New(),
	}

	start := time.Now()
	dropped, err := s.load(ctx, src)
	if err != nil {
		s.err = fmt.Errorf("load catalog from %s: %w", src.Name(), err)
		s.byID = nil
		s.idx = nil
		logger.Error("catalog load failed",
			zap.String("source", src.Name()),
			zap.Error(err),
		)
		return s
	}

	metrics.CatalogDocuments.Set(float64(len(s.byID)))
	metrics.IndexTerms.Set(float64(s.idx.Terms()))

	logger.Info("catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("documents", len(s.byID)),
		zap.Int("duplicates_dropped", dropped),
		zap.Int("index_terms", s.idx.Terms()),
		zap.Duration("took", time.Since(start)),
	)
	return s
}

func (s *Store) load(ctx context.Context, src source.Source) (dropped int, err error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	var records []domain.Medication
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("snapshot contains no records")
	}

	forms := make(map[string]struct{})
	for i, med := range records {
		if med.ProductCode == "" {
			return 0, fmt.Errorf("record %d has no product code", i)
		}
		// First occurrence wins; later duplicates are dropped.
		if _, ok := s.byID[med.ProductCode]; ok {
			dropped++
			continue
		}
		s.byID[med.ProductCode] = med
		s.idx.Add(med.ProductCode, fieldTokens(med))
		if med.DosageForm != "" {
			forms[med.DosageForm] = struct{}{}
		}
	}

	s.dosageForms = make([]string, 0, len(forms))
	for f := range forms {
		s.dosageForms = append(s.dosageForms, f)
	}
	sort.Strings(s.dosageForms)

	return dropped, nil
}

// fieldTokens projects the indexed fields of a medication into token lists.
// Ingredient names are concatenated so multi-ingredient products are
// searchable by any component.
func fieldTokens(med domain.Medication) map[string][]string {
	names := make([]string, 0, len(med.Ingredients))
	for _, ing := range med.Ingredients {
		names = append(names, ing.Name)
	}

	return map[string][]string{
		FieldBrandName:   index.Tokenize(med.BrandName),
		FieldGenericName: index.Tokenize(med.GenericName),
		FieldIngredients: index.Tokenize(strings.Join(names, " ")),
	}
}

// Ready reports whether the catalog loaded. A non-nil error is the remembered
// load failure.
func (s *Store) Ready() error { return s.err }

// GetByID returns the medication with the given product code.
func (s *Store) GetByID(id string) (domain.Medication, error) {
	if s.err != nil {
		return domain.Medication{}, fmt.Errorf("%w: %w", domain.ErrUnavailable, s.err)
	}
	med, ok := s.byID[id]
	if !ok {
		return domain.Medication{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return med, nil
}

// DosageForms returns the distinct dosage form values across the catalog in
// lexicographic order.
func (s *Store) DosageForms() ([]string, error) {
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, s.err)
	}
	out := make([]string, len(s.dosageForms))
	copy(out, s.dosageForms)
	return out, nil
}

// Index returns the inverted index, nil when the load failed.
func (s *Store) Index() *index.Index { return s.idx }

// Len reports the number of catalog documents.
func (s *Store) Len() int { return len(s.byID) }
