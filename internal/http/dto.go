package http

import (
	"github.com/tracykish1/T-T-Botanica-Shop/internal/checkout"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/pricing"
)

// Monetary fields render as strings rounded to two fraction digits;
// rounding happens here and nowhere earlier.

type CareResponse struct {
	Light    string `json:"light,omitempty"`
	Water    string `json:"water,omitempty"`
	Humidity string `json:"humidity,omitempty"`
}

type ProductResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Subtitle    string       `json:"subtitle"`
	Price       string       `json:"price"`
	CompareAt   string       `json:"compare_at,omitempty"`
	OnSale      bool         `json:"on_sale"`
	Category    string       `json:"category"`
	Type        string       `json:"type"`
	Tags        []string     `json:"tags,omitempty"`
	Stock       int          `json:"stock"`
	LowStock    bool         `json:"low_stock"`
	ImageURL    string       `json:"image_url,omitempty"`
	Description string       `json:"description,omitempty"`
	Care        CareResponse `json:"care,omitempty"`
	PaymentLink string       `json:"payment_link,omitempty"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type FacetsResponse struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
}

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Qty       int    `json:"qty"`
	LineTotal string `json:"line_total"`
	// Stock is the product's current stock, so the client can warn when
	// it dropped below the cart quantity after the add
	Stock int `json:"stock"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Units int                `json:"units"`
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type AddItemResponse struct {
	Status   string       `json:"status"`
	OpenCart bool         `json:"open_cart"`
	Cart     CartResponse `json:"cart"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type DestinationDTO struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type QuoteRequestDTO struct {
	Destination DestinationDTO `json:"destination"`
}

type ShippingResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type TaxResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Percent string `json:"percent"`
	Amount  string `json:"amount"`
}

type QuoteResponse struct {
	Subtotal string           `json:"subtotal"`
	Shipping ShippingResponse `json:"shipping"`
	Tax      *TaxResponse     `json:"tax,omitempty"`
	Total    string           `json:"total"`
}

type CheckoutRequestDTO struct {
	Destination DestinationDTO `json:"destination"`
	Notes       string         `json:"notes"`
}

type MessageResponse struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type CheckoutResponseDTO struct {
	Outcome      string           `json:"outcome"`
	OrderRef     string           `json:"order_ref"`
	PaymentLinks []string         `json:"payment_links,omitempty"`
	Message      *MessageResponse `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Subtitle:    p.Subtitle,
		Price:       p.Price.StringFixed(2),
		OnSale:      p.OnSale(),
		Category:    p.Category,
		Type:        p.Type,
		Tags:        p.Tags,
		Stock:       p.Stock,
		LowStock:    p.LowStock(),
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Care:        CareResponse(p.Care),
		PaymentLink: p.PaymentLink,
	}
	if p.OnSale() {
		resp.CompareAt = p.CompareAt.StringFixed(2)
	}
	return resp
}

func toQuoteResponse(b pricing.Breakdown) QuoteResponse {
	resp := QuoteResponse{
		Subtotal: b.Subtotal.StringFixed(2),
		Shipping: ShippingResponse{
			ID:     b.Shipping.ID,
			Label:  b.Shipping.Label,
			Amount: b.ShippingAmount.StringFixed(2),
		},
		Total: b.Total.StringFixed(2),
	}
	if b.Tax != nil {
		resp.Tax = &TaxResponse{
			ID:      b.Tax.ID,
			Label:   b.Tax.Label,
			Percent: pricing.Percent(b.Tax.Percent),
			Amount:  b.TaxAmount.StringFixed(2),
		}
	}
	return resp
}

func toCheckoutResponse(o checkout.Outcome) CheckoutResponseDTO {
	resp := CheckoutResponseDTO{
		Outcome:      o.Kind.String(),
		OrderRef:     o.OrderRef,
		PaymentLinks: o.PaymentLinks,
	}
	if o.Message != nil {
		msg := MessageResponse(*o.Message)
		resp.Message = &msg
	}
	return resp
}

func (d DestinationDTO) toDomain() domain.Destination {
	return domain.Destination(d)
}
