package search

import (
	"sort"

	"github.com/medcloud/rxdex/internal/index"
)

// Match type factors. Kept monotonic: an exact hit always outscores a prefix
// hit of the same term, which outscores any fuzzy hit; fuzzy contributions
// decay with edit distance and never reach zero within the bound.
const (
	exactFactor  = 1.0
	prefixFactor = 0.8
	fuzzyFactor  = 0.5
)

// scored is a ranked candidate document.
type scored struct {
	id    string
	score float64
}

// rank expands each query token against the index (exact, then prefix, then
// bounded-edit-distance fuzzy), accumulates per-document contributions of
// frequency x field weight x match factor, and returns candidates ordered by
// score descending with product code ascending as tiebreak. Documents that
// match no token are absent from the result.
func rank(idx TermIndex, tokens []string, weights map[string]float64, fuzzyRatio float64) []scored {
	scores := make(map[string]float64)

	for _, token := range tokens {
		maxDist := int(fuzzyRatio * float64(len(token)))

		// Classify each candidate index term once, by its strongest match
		// type for this token.
		factors := make(map[string]float64)
		for _, term := range idx.PrefixTerms(token) {
			if term == token {
				factors[term] = exactFactor
			} else {
				factors[term] = prefixFactor
			}
		}
		// Short tokens get no fuzzy budget; the trie walk above already
		// covered their exact and prefix hits.
		if maxDist > 0 {
			for _, m := range idx.FuzzyTerms(token, maxDist) {
				if _, seen := factors[m.Term]; seen {
					continue
				}
				factors[m.Term] = fuzzyFactor * (1 - float64(m.Distance)/float64(maxDist+1))
			}
		}

		for term, factor := range factors {
			accumulate(scores, idx.LookupExact(term), weights, factor)
		}
	}

	ranked := make([]scored, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, scored{id: id, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	return ranked
}

func accumulate(scores map[string]float64, postings []index.Posting, weights map[string]float64, factor float64) {
	for _, p := range postings {
		weight, ok := weights[p.Field]
		if !ok {
			weight = 1
		}
		scores[p.DocID] += float64(p.Frequency) * weight * factor
	}
}
