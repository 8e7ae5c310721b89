package domain

import "github.com/shopspring/decimal"

// LowStockThreshold is the stock level at or below which a product is
// flagged as low stock in product views.
const LowStockThreshold = 5

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Subtitle    string          `json:"subtitle"`
	Price       decimal.Decimal `json:"price"`
	CompareAt   decimal.Decimal `json:"compare_at"` // zero when not discounted
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Tags        []string        `json:"tags,omitempty"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
	Care        Care            `json:"care,omitempty"`
	PaymentLink string          `json:"payment_link,omitempty"` // external checkout reference, absence is meaningful
}

// Care holds presentation-only plant care metadata. It never feeds into
// pricing or checkout.
type Care struct {
	Light    string `json:"light,omitempty"`
	Water    string `json:"water,omitempty"`
	Humidity string `json:"humidity,omitempty"`
}

// OnSale reports whether the compare-at price should be rendered as a
// crossed-out discount.
func (p Product) OnSale() bool {
	return p.CompareAt.GreaterThan(p.Price)
}

// LowStock reports whether the product should carry a low-stock badge.
func (p Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}

// Addable reports whether the product can be placed in a cart at all.
// Out-of-stock products stay visible in the catalog but are not addable.
func (p Product) Addable() bool {
	return p.Stock > 0
}
