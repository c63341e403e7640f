package health

// CatalogChecker reports whether the catalog loaded.
type CatalogChecker interface {
	Ready() error
}
