package cart

import (
	"sync"
	"time"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

// AddStatus reports what Add actually did, so the presentation layer
// can message the shopper instead of failing silently.
type AddStatus string

const (
	// StatusAdded means the requested quantity landed in the cart
	StatusAdded AddStatus = "added"

	// StatusClamped means the line was capped at the product's stock
	StatusClamped AddStatus = "clamped"

	// StatusOutOfStock means the product had no stock and nothing changed
	StatusOutOfStock AddStatus = "out_of_stock"
)

// Changed reports whether the cart was mutated.
func (s AddStatus) Changed() bool {
	return s != StatusOutOfStock
}

// Store owns one shopper's cart. It only references catalog products,
// never mutates them. All operations are immediate and total.
type Store struct {
	mu   sync.Mutex
	cart domain.Cart
}

// NewStore creates an empty cart store
func NewStore() *Store {
	now := time.Now()
	return &Store{cart: domain.Cart{CreatedAt: now, UpdatedAt: now}}
}

// Restore creates a store around a previously persisted cart. Lines
// with a non-positive quantity are dropped; the cart never holds them.
func Restore(c domain.Cart) *Store {
	lines := make([]domain.CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.Qty >= 1 {
			lines = append(lines, l)
		}
	}
	c.Lines = lines

	s := &Store{cart: c}
	if s.cart.CreatedAt.IsZero() {
		s.cart.CreatedAt = time.Now()
	}
	return s
}

// Add puts qty units of the product in the cart, clamped to current
// stock. An out-of-stock product is a no-op. Quantities below 1 are
// treated as 1.
func (s *Store) Add(p domain.Product, qty int) AddStatus {
	if qty < 1 {
		qty = 1
	}
	if !p.Addable() {
		return StatusOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		l := &s.cart.Lines[i]
		if l.ProductID != p.ID {
			continue
		}
		want := l.Qty + qty
		next := min(want, p.Stock)
		l.Qty = next
		s.touch()
		if next < want {
			return StatusClamped
		}
		return StatusAdded
	}

	next := min(qty, p.Stock)
	s.cart.Lines = append(s.cart.Lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       next,
	})
	s.touch()
	if next < qty {
		return StatusClamped
	}
	return StatusAdded
}

// UpdateQuantity adjusts the matching line by delta, floored at 0. A
// line reaching 0 is removed outright. Stock is deliberately not
// re-checked here; only Add clamps against stock. Returns false when no
// line matches.
func (s *Store) UpdateQuantity(productID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		l := &s.cart.Lines[i]
		if l.ProductID != productID {
			continue
		}
		next := max(0, l.Qty+delta)
		if next == 0 {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
		} else {
			l.Qty = next
		}
		if delta != 0 {
			s.touch()
		}
		return true
	}
	return false
}

// Remove deletes the line if present; a no-op otherwise
func (s *Store) Remove(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.cart.Lines {
		if l.ProductID == productID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

// Clear drops every line (explicit user action or session reset)
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Lines = nil
	s.touch()
}

// Snapshot returns a copy of the cart, lines in insertion order
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cart
	out.Lines = make([]domain.CartLine, len(s.cart.Lines))
	copy(out.Lines, s.cart.Lines)
	return out
}

func (s *Store) touch() {
	s.cart.UpdatedAt = time.Now()
}
