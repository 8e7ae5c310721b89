package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/pricing"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
)

// Resolver decides the checkout outcome for a cart. It reads the
// catalog and rule config but mutates nothing.
type Resolver struct {
	catalog catalog.Catalog
	cfg     *rules.Config
}

func NewResolver(c catalog.Catalog, cfg *rules.Config) *Resolver {
	return &Resolver{catalog: c, cfg: cfg}
}

// Resolve maps every cart line to its catalog item. If all resolved
// items carry a payment link the outcome is DirectPayment with the
// ordered link list; pricing is not consulted on that path. Otherwise
// the outcome is a composed order message built from the pricing
// breakdown. An empty cart vacuously resolves to DirectPayment with no
// links; callers should guard against that at a higher layer.
func (r *Resolver) Resolve(c domain.Cart, dest domain.Destination, notes string) Outcome {
	orderRef := uuid.New().String()

	links := make([]string, 0, len(c.Lines))
	allLinked := true
	for _, l := range c.Lines {
		p, err := r.catalog.Get(l.ProductID)
		if err != nil || p.PaymentLink == "" {
			// A line that no longer resolves to a catalog item cannot be
			// paid directly either
			allLinked = false
			break
		}
		links = append(links, p.PaymentLink)
	}

	if allLinked {
		return Outcome{
			Kind:         OutcomeDirectPayment,
			OrderRef:     orderRef,
			PaymentLinks: links,
		}
	}

	breakdown := pricing.Quote(c, dest, r.cfg)
	msg := composeMessage(r.cfg.Brand, c, dest, notes, breakdown)
	return Outcome{
		Kind:     OutcomeComposedMessage,
		OrderRef: orderRef,
		Message:  &msg,
	}
}

// composeMessage formats the human-readable order summary. Lines use
// CRLF so mail composers render the breakdown line by line.
func composeMessage(brand rules.Brand, c domain.Cart, dest domain.Destination, notes string, b pricing.Breakdown) Message {
	var body strings.Builder

	fmt.Fprintf(&body, "Hello %s,\r\n\r\n", brand.Name)
	body.WriteString("I'd like to place this order:\r\n")
	for _, l := range c.Lines {
		fmt.Fprintf(&body, "• %s x%d — %s\r\n", l.Name, l.Qty, pricing.Currency(l.LineTotal()))
	}
	fmt.Fprintf(&body, "Subtotal: %s\r\n", pricing.Currency(b.Subtotal))
	fmt.Fprintf(&body, "Shipping: %s %s\r\n", b.Shipping.Label, pricing.Currency(b.ShippingAmount))
	if b.Tax != nil {
		fmt.Fprintf(&body, "%s (%s): %s\r\n", b.Tax.Label, pricing.Percent(b.Tax.Percent), pricing.Currency(b.TaxAmount))
	}
	fmt.Fprintf(&body, "Total: %s\r\n", pricing.Currency(b.Total))
	fmt.Fprintf(&body, "\r\nNotes: %s\r\n", notes)
	fmt.Fprintf(&body, "\r\nShip to: %s, %s %s, %s\r\n", dest.City, dest.State, dest.Zip, dest.Country)

	return Message{
		To:      brand.Email,
		Subject: fmt.Sprintf("Order from %s", brand.Name),
		Body:    body.String(),
	}
}
