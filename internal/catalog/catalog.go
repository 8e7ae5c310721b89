package catalog

import (
	"errors"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

// Common errors returned by the store
var ErrProductNotFound = errors.New("product not found")

// AllFacet is the sentinel facet value that disables a filter.
const AllFacet = "All"

// Filter narrows the catalog listing. Zero values (or AllFacet for the
// facet fields) leave that dimension unfiltered; the three filters
// compose with logical AND.
type Filter struct {
	Query    string
	Category string
	Type     string
}

// Catalog defines read and replace operations over the sellable items.
// The catalog owns the Product records; callers get copies.
type Catalog interface {
	// List returns the order-preserving subsequence matching the filter
	List(f Filter) []domain.Product

	// Get returns a single product by id
	Get(id string) (domain.Product, error)

	// Categories and Types return the sorted distinct facet values,
	// prefixed with AllFacet
	Categories() []string
	Types() []string

	// Snapshot returns the full catalog for persistence
	Snapshot() []domain.Product

	// Replace swaps the whole catalog (used when loading persisted state)
	Replace(items []domain.Product)
}
