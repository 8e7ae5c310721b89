package checkout

// OutcomeKind is the terminal result of a checkout attempt
type OutcomeKind string

const (
	// OutcomeDirectPayment means every cart item carries a payment link;
	// the caller opens the links, each encoding its own price
	OutcomeDirectPayment OutcomeKind = "DIRECT_PAYMENT"

	// OutcomeComposedMessage means at least one item lacks a payment
	// link; the caller dispatches the composed order message instead
	OutcomeComposedMessage OutcomeKind = "COMPOSED_MESSAGE"
)

// String representation (for logging)
func (k OutcomeKind) String() string {
	return string(k)
}

// Message is the composed order summary payload. The resolver never
// sends it; dispatch (e.g. opening a mail composer) is owned by the
// caller.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Outcome is what a checkout attempt resolved to. PaymentLinks is set
// for DirectPayment (one per cart line, in cart order); Message for
// ComposedMessage.
type Outcome struct {
	Kind         OutcomeKind `json:"kind"`
	OrderRef     string      `json:"order_ref"`
	PaymentLinks []string    `json:"payment_links,omitempty"`
	Message      *Message    `json:"message,omitempty"`
}
