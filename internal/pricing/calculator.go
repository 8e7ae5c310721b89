package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
)

// Breakdown is the line-by-line pricing result. All amounts are exact
// decimals; rounding happens only at render time via Currency.
type Breakdown struct {
	Subtotal       decimal.Decimal
	Shipping       rules.ShippingRule
	ShippingAmount decimal.Decimal
	Tax            *rules.TaxRule // nil when no rule matched the destination
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Quote derives the full breakdown from the cart lines, the shipping
// destination and the rule config. Pure function; never fails.
func Quote(c domain.Cart, dest domain.Destination, cfg *rules.Config) Breakdown {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := cfg.SelectShipping(subtotal)

	taxAmount := decimal.Zero
	var tax *rules.TaxRule
	if rule, ok := cfg.SelectTax(dest); ok {
		tax = &rule
		taxAmount = subtotal.Mul(rule.Percent)
	}

	return Breakdown{
		Subtotal:       subtotal,
		Shipping:       shipping,
		ShippingAmount: shipping.Rate,
		Tax:            tax,
		TaxAmount:      taxAmount,
		Total:          subtotal.Add(shipping.Rate).Add(taxAmount),
	}
}

// Currency renders an amount for display, rounded half away from zero
// to two fraction digits.
func Currency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Percent renders a tax fraction as a percentage with one fraction
// digit, e.g. 0.102 -> "10.2%".
func Percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
