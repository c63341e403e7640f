// Package index implements an in-memory inverted index over catalog
// documents, with exact, prefix, and bounded-edit-distance term lookup.
// The index is built once at load time and is immutable afterwards, so
// concurrent readers need no synchronization.
package index

import "sort"

// Posting records one occurrence set of a term: the document it appears in,
// the field it was extracted from, and how often it occurs in that field.
type Posting struct {
	DocID     string
	Field     string
	Frequency int
}

// TermMatch is an index term matched by a fuzzy lookup together with its
// edit distance from the query term.
type TermMatch struct {
	Term     string
	Distance int
}

// Index maps terms to per-document, per-field frequencies. Prefix lookups go
// through a trie over the term set; fuzzy lookups scan the sorted term list,
// which is linear in the number of distinct terms. That bound is fine for
// catalogs in the thousands to low tens of thousands of documents.
type Index struct {
	postings map[string]map[string]map[string]int // term -> docID -> field -> freq
	terms    []string                             // sorted
	prefixes *trie
}

// New creates an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string]map[string]map[string]int),
		prefixes: newTrie(),
	}
}

// Add registers the term occurrences of one document. fieldTokens maps each
// indexed field name to the token sequence produced from its text; duplicate
// tokens within a field raise that field's term frequency.
func (ix *Index) Add(docID string, fieldTokens map[string][]string) {
	for field, tokens := range fieldTokens {
		for _, term := range tokens {
			byDoc, ok := ix.postings[term]
			if !ok {
				byDoc = make(map[string]map[string]int)
				ix.postings[term] = byDoc

				i := sort.SearchStrings(ix.terms, term)
				ix.terms = append(ix.terms, "")
				copy(ix.terms[i+1:], ix.terms[i:])
				ix.terms[i] = term
				ix.prefixes.insert(term)
			}
			byField, ok := byDoc[docID]
			if !ok {
				byField = make(map[string]int)
				byDoc[docID] = byField
			}
			byField[field]++
		}
	}
}

// LookupExact returns the postings of a term, ordered by document id then
// field name for determinism. Unknown terms yield an empty slice.
func (ix *Index) LookupExact(term string) []Posting {
	byDoc, ok := ix.postings[term]
	if !ok {
		return nil
	}

	out := make([]Posting, 0, len(byDoc))
	for docID, byField := range byDoc {
		for field, freq := range byField {
			out = append(out, Posting{DocID: docID, Field: field, Frequency: freq})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DocID != out[j].DocID {
			return out[i].DocID < out[j].DocID
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// PrefixTerms returns all index terms starting with prefix, in lexicographic
// order, including the prefix itself when it is a term.
func (ix *Index) PrefixTerms(prefix string) []string {
	return ix.prefixes.withPrefix(prefix)
}

// FuzzyTerms returns all index terms within maxDist Levenshtein edits of
// term, in lexicographic order. maxDist <= 0 yields at most the exact term.
func (ix *Index) FuzzyTerms(term string, maxDist int) []TermMatch {
	var out []TermMatch
	for _, t := range ix.terms {
		if d, ok := levenshtein(term, t, maxDist); ok {
			out = append(out, TermMatch{Term: t, Distance: d})
		}
	}
	return out
}

// Terms reports the number of distinct indexed terms.
func (ix *Index) Terms() int { return len(ix.terms) }
