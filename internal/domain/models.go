package domain

import "github.com/shopspring/decimal"

// DefaultImage is used for products saved without a usable image URL.
const DefaultImage = "https://cdn.poehali.dev/projects/0598ef78-45b2-4d7a-9b03-ab91c1dc224f/files/a215575b-0932-4713-97d3-b3a1d9252724.jpg"

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// ProductForm is raw admin input; fields are parsed when an operation runs.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Category    string
	Image       string
}

type AdType string

const (
	AdHorizontal AdType = "horizontal"
	AdVertical   AdType = "vertical"
	AdSquare     AdType = "square"
)

type Ad struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Type        AdType `json:"type"`
	Active      bool   `json:"active"`
}

type AdForm struct {
	Title       string
	Description string
	Image       string
	Link        string
	Type        string
	Active      string
}

// CartLineItem is a snapshot of the product taken when it was first added.
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (it CartLineItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type CartSummary struct {
	Items      []CartLineItem  `json:"items"`
	TotalCount int             `json:"totalCount"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type VisibleProduct struct {
	Product Product `json:"product"`
	IsHit   bool    `json:"isHit"`
}

type AdMetrics struct {
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
}

// ClickResult tells the view which URL to open, if any.
type ClickResult struct {
	OpenURL string    `json:"openUrl,omitempty"`
	Metrics AdMetrics `json:"metrics"`
}
