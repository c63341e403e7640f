package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
)

var (
	// SearchesTotal counts catalog searches by outcome.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rxdex",
			Name:      "searches_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"outcome"},
	)

	// SearchDuration measures search latency.
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rxdex",
			Name:      "search_duration_seconds",
			Help:      "Catalog search duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// CatalogDocuments reports the number of loaded catalog documents.
	CatalogDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rxdex",
			Name:      "catalog_documents",
			Help:      "Number of documents in the loaded catalog",
		},
	)

	// IndexTerms reports the number of distinct indexed terms.
	IndexTerms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rxdex",
			Name:      "index_terms",
			Help:      "Number of distinct terms in the inverted index",
		},
	)
)

// RegisterSearchMetrics registers the search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(CatalogDocuments)
	prometheus.MustRegister(IndexTerms)
}
