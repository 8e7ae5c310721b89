package rules

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

var ErrNoZeroThresholdShipping = errors.New("shipping rules need at least one zero-threshold fallback rule")

// ShippingRule is a threshold-gated flat-rate charge. It applies when
// the cart subtotal is at least MinSubtotal.
type ShippingRule struct {
	ID          string
	Label       string
	MinSubtotal decimal.Decimal
	Rate        decimal.Decimal
}

// TaxRule is a destination-gated percentage charge. Percent is a
// fraction, e.g. 0.102 for 10.2%.
type TaxRule struct {
	ID        string
	Label     string
	Percent   decimal.Decimal
	AppliesTo func(domain.Destination) bool
}

// Brand identifies the shop in composed order messages.
type Brand struct {
	Name      string
	Tagline   string
	Email     string
	Facebook  string
	Instagram string
}

// Config is the immutable rule configuration consumed at engine
// initialization. It is safe to share without locking.
type Config struct {
	Brand    Brand
	Shipping []ShippingRule
	Tax      []TaxRule
}

// NewConfig validates the hand-edited tables. The only requirement is a
// zero-threshold shipping rule, so SelectShipping always has a
// qualifying candidate.
func NewConfig(brand Brand, shipping []ShippingRule, tax []TaxRule) (*Config, error) {
	hasFallback := false
	for _, r := range shipping {
		if r.MinSubtotal.IsZero() {
			hasFallback = true
			break
		}
	}
	if !hasFallback {
		return nil, ErrNoZeroThresholdShipping
	}
	return &Config{Brand: brand, Shipping: shipping, Tax: tax}, nil
}

// SelectShipping picks the lowest-rate rule whose threshold the
// subtotal meets. Ties keep the earlier declared rule. If nothing
// qualifies the first declared rule is the hard fallback; this never
// fails.
func (c *Config) SelectShipping(subtotal decimal.Decimal) ShippingRule {
	var best *ShippingRule
	for i := range c.Shipping {
		r := &c.Shipping[i]
		if subtotal.LessThan(r.MinSubtotal) {
			continue
		}
		if best == nil || r.Rate.LessThan(best.Rate) {
			best = r
		}
	}
	if best == nil {
		return c.Shipping[0]
	}
	return *best
}

// SelectTax returns the first declared rule matching the destination.
// Declaration order matters: specific rules (a named city) must come
// before broader fallbacks (a whole state), since only the first match
// wins. The second return is false when no rule matches.
func (c *Config) SelectTax(dest domain.Destination) (TaxRule, bool) {
	for _, r := range c.Tax {
		if r.AppliesTo(dest) {
			return r, true
		}
	}
	return TaxRule{}, false
}
