// Package domain holds the core entities and sentinel errors of the
// medication catalog.
package domain

// Ingredient is one active ingredient of a medication.
type Ingredient struct {
	Name     string `json:"name"`
	Strength string `json:"strength"`
}

// Medication is a single catalog record. ProductCode is the natural key;
// catalog load keeps the first record seen for a code and drops later
// duplicates. BrandName, GenericName, and the ingredient names are
// full-text indexed; DosageForm is the facet used for exact-match
// filtering; the remaining fields are stored and returned verbatim.
type Medication struct {
	ProductCode string       `json:"product_code"`
	BrandName   string       `json:"brand_name"`
	GenericName string       `json:"generic_name"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	DosageForm  string       `json:"dosage_form"`
	Packaging   string       `json:"packaging,omitempty"`
	LabelerName string       `json:"labeler_name,omitempty"`
}
