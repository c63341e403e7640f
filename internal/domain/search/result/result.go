// Package result defines the search hit value type.
package result

import "github.com/medcloud/rxdex/internal/domain"

// Result is a single search hit: a catalog medication plus its computed
// relevance score. Results are constructed per query and never persisted.
type Result struct {
	medication domain.Medication
	score      float64
}

// New creates a search result.
func New(med domain.Medication, score float64) Result {
	return Result{medication: med, score: score}
}

// Medication returns the matched catalog record.
func (r *Result) Medication() domain.Medication { return r.medication }

// Score returns the relevance score. Higher is more relevant.
func (r *Result) Score() float64 { return r.score }
