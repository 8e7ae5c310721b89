package rules

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

// Default returns the shop's hand-edited rule tables. Verify local tax
// rates before launch; the Tacoma rate here is ~10.2%.
func Default() *Config {
	cfg, err := NewConfig(
		Brand{
			Name:      "T&T Botanica",
			Tagline:   "Tropical • Whimsical • Lush",
			Email:     "hello@ttbotanica.com",
			Facebook:  "https://www.facebook.com/ttbotanica",
			Instagram: "https://www.instagram.com/ttbotanica",
		},
		[]ShippingRule{
			{
				ID:          "free_over_75",
				Label:       "Free (orders $75+)",
				MinSubtotal: decimal.NewFromInt(75),
				Rate:        decimal.Zero,
			},
			{
				ID:          "standard_under_75",
				Label:       "Standard shipping",
				MinSubtotal: decimal.Zero,
				Rate:        decimal.NewFromInt(8),
			},
		},
		[]TaxRule{
			{
				ID:      "wa_tacoma",
				Label:   "Tacoma, WA sales tax",
				Percent: decimal.RequireFromString("0.102"),
				AppliesTo: func(d domain.Destination) bool {
					return d.Country == "US" && d.State == "WA" && strings.EqualFold(d.City, "Tacoma")
				},
			},
			{
				ID:      "wa_statewide_fallback",
				Label:   "Washington (fallback)",
				Percent: decimal.RequireFromString("0.095"),
				AppliesTo: func(d domain.Destination) bool {
					return d.Country == "US" && d.State == "WA"
				},
			},
		},
	)
	if err != nil {
		// The built-in tables always carry a zero-threshold rule.
		panic(err)
	}
	return cfg
}
