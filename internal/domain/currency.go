package domain

import "github.com/shopspring/decimal"

type Currency string

const (
	USD Currency = "$"
	EUR Currency = "€"
	RUB Currency = "₽"
	GBP Currency = "£"
	JPY Currency = "¥"
)

const DefaultCurrency = USD

// Currencies is the fixed choice list offered to the admin, in display order.
var Currencies = []Currency{USD, EUR, RUB, GBP, JPY}

func (c Currency) Valid() bool {
	for _, x := range Currencies {
		if c == x {
			return true
		}
	}
	return false
}

func (c Currency) Code() string {
	switch c {
	case USD:
		return "USD"
	case EUR:
		return "EUR"
	case RUB:
		return "RUB"
	case GBP:
		return "GBP"
	case JPY:
		return "JPY"
	default:
		return ""
	}
}

// FormatPrice renders a price with the currency symbol as a prefix label.
func FormatPrice(c Currency, price decimal.Decimal) string {
	return string(c) + price.StringFixed(2)
}
