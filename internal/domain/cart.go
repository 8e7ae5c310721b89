package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a single cart entry. Name and Price are denormalized
// snapshots taken when the product is first added, so the cart keeps
// rendering consistently even if the catalog entry changes later.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

// LineTotal is Price × Qty, exact.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart holds the shopper's lines in insertion order. At most one line
// exists per product id; a line with quantity 0 is never retained.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Units is the total quantity across all lines (the cart badge count).
func (c Cart) Units() int {
	units := 0
	for _, l := range c.Lines {
		units += l.Qty
	}
	return units
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Destination is a free-form shipping destination. Values are not
// validated for realism; they only drive tax rule selection and the
// composed order summary.
type Destination struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}
