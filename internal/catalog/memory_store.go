package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

// MemoryStore implements Catalog with in-memory storage
type MemoryStore struct {
	mu    sync.RWMutex
	items []domain.Product
}

// NewMemoryStore creates a catalog store holding a copy of the given items
func NewMemoryStore(items []domain.Product) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(items)
	return s
}

// List returns products matching the filter, preserving catalog order
func (s *MemoryStore) List(f Filter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.items))
	for _, p := range s.items {
		if matches(p, f) {
			result = append(result, p)
		}
	}
	return result
}

// Get returns the product with the given id
func (s *MemoryStore) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Categories returns the sorted distinct categories, AllFacet first
func (s *MemoryStore) Categories() []string {
	return s.facet(func(p domain.Product) string { return p.Category })
}

// Types returns the sorted distinct product types, AllFacet first
func (s *MemoryStore) Types() []string {
	return s.facet(func(p domain.Product) string { return p.Type })
}

// Snapshot returns a copy of the full catalog
func (s *MemoryStore) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Replace swaps the catalog contents for a copy of items
func (s *MemoryStore) Replace(items []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domain.Product, len(items))
	copy(s.items, items)
}

func (s *MemoryStore) facet(value func(domain.Product) string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	values := make([]string, 0, len(s.items))
	for _, p := range s.items {
		v := value(p)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return append([]string{AllFacet}, values...)
}

// matches applies the free-text query over name, subtitle and tags plus
// category/type equality, all ANDed together
func matches(p domain.Product, f Filter) bool {
	if f.Query != "" {
		haystack := strings.ToLower(p.Name + " " + p.Subtitle + " " + strings.Join(p.Tags, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}
	if f.Category != "" && f.Category != AllFacet && p.Category != f.Category {
		return false
	}
	if f.Type != "" && f.Type != AllFacet && p.Type != f.Type {
		return false
	}
	return true
}
