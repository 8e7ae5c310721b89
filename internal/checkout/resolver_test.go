package checkout

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
)

func setupResolver(t *testing.T, products ...domain.Product) *Resolver {
	t.Helper()
	return NewResolver(catalog.NewMemoryStore(products), rules.Default())
}

func linked(id string, price int64, link string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        "product " + id,
		Price:       decimal.NewFromInt(price),
		Stock:       10,
		PaymentLink: link,
	}
}

func lineFor(p domain.Product, qty int) domain.CartLine {
	return domain.CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Qty: qty}
}

func TestResolve_AllLinkedIsDirectPayment(t *testing.T) {
	p1 := linked("p1", 38, "https://pay.example/p1")
	p2 := linked("p2", 16, "https://pay.example/p2")
	r := setupResolver(t, p1, p2)

	outcome := r.Resolve(
		domain.Cart{Lines: []domain.CartLine{lineFor(p1, 2), lineFor(p2, 1)}},
		domain.Destination{Country: "US", State: "WA", City: "Tacoma"},
		"",
	)

	assert.Equal(t, OutcomeDirectPayment, outcome.Kind)
	assert.NotEmpty(t, outcome.OrderRef)
	assert.Equal(t, []string{"https://pay.example/p1", "https://pay.example/p2"}, outcome.PaymentLinks)
	assert.Nil(t, outcome.Message)
}

func TestResolve_MixedCapabilityIsComposedMessage(t *testing.T) {
	p1 := linked("p1", 38, "https://pay.example/p1")
	p2 := linked("p2", 16, "") // no payment link
	r := setupResolver(t, p1, p2)

	outcome := r.Resolve(
		domain.Cart{Lines: []domain.CartLine{lineFor(p1, 1), lineFor(p2, 1)}},
		domain.Destination{Country: "US", State: "CA"},
		"",
	)

	assert.Equal(t, OutcomeComposedMessage, outcome.Kind)
	assert.Empty(t, outcome.PaymentLinks)
	require.NotNil(t, outcome.Message)
}

func TestResolve_UnresolvableLineIsComposedMessage(t *testing.T) {
	p1 := linked("p1", 38, "https://pay.example/p1")
	r := setupResolver(t, p1)

	outcome := r.Resolve(
		domain.Cart{Lines: []domain.CartLine{
			lineFor(p1, 1),
			{ProductID: "gone", Name: "removed product", Price: decimal.NewFromInt(9), Qty: 1},
		}},
		domain.Destination{},
		"",
	)

	assert.Equal(t, OutcomeComposedMessage, outcome.Kind)
}

func TestResolve_EmptyCartIsVacuouslyDirectPayment(t *testing.T) {
	r := setupResolver(t)

	outcome := r.Resolve(domain.Cart{}, domain.Destination{}, "")

	assert.Equal(t, OutcomeDirectPayment, outcome.Kind)
	assert.Empty(t, outcome.PaymentLinks)
}

func TestResolve_ComposedMessageContents(t *testing.T) {
	p1 := linked("p1", 38, "")
	p1.Name = "Monstera deliciosa"
	r := setupResolver(t, p1)

	outcome := r.Resolve(
		domain.Cart{Lines: []domain.CartLine{lineFor(p1, 2)}},
		domain.Destination{Country: "US", State: "WA", City: "Tacoma", Zip: "98402"},
		"gift wrap please",
	)

	require.NotNil(t, outcome.Message)
	msg := outcome.Message
	assert.Equal(t, "hello@ttbotanica.com", msg.To)
	assert.Equal(t, "Order from T&T Botanica", msg.Subject)

	assert.Contains(t, msg.Body, "Hello T&T Botanica,")
	assert.Contains(t, msg.Body, "• Monstera deliciosa x2 — $76.00")
	assert.Contains(t, msg.Body, "Subtotal: $76.00")
	assert.Contains(t, msg.Body, "Shipping: Free (orders $75+) $0.00")
	assert.Contains(t, msg.Body, "Tacoma, WA sales tax (10.2%): $7.75")
	assert.Contains(t, msg.Body, "Total: $83.75")
	assert.Contains(t, msg.Body, "Notes: gift wrap please")
	assert.Contains(t, msg.Body, "Ship to: Tacoma, WA 98402, US")
}

func TestResolve_ComposedMessageOmitsTaxLineWhenNoRuleMatches(t *testing.T) {
	p1 := linked("p1", 38, "")
	r := setupResolver(t, p1)

	outcome := r.Resolve(
		domain.Cart{Lines: []domain.CartLine{lineFor(p1, 1)}},
		domain.Destination{Country: "US", State: "CA"},
		"",
	)

	require.NotNil(t, outcome.Message)
	// No tax line, and the total reflects subtotal + shipping only
	assert.False(t, strings.Contains(outcome.Message.Body, "tax"))
	assert.Contains(t, outcome.Message.Body, "Total: $46.00")
}
