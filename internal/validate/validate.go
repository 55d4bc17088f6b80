package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"digitalstore/internal/domain"
)

var reID = regexp.MustCompile(`^[0-9]{1,9}$`)

// Bounds on decimal input keep comparisons from rescaling huge exponents.
const (
	maxDecimalLen = 40
	maxDecimalExp = 18
)

// ID parses a positive integer resource id (product/ad ids).
func ID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty parses a quantity. Range is not checked here: the cart ignores values < 1.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal parses a number such as "19.", ".99", "+50" or "5e1"; a comma is
// accepted as the separator. Anything that does not parse is absent.
func Decimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxDecimalLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, false
	}
	if e := d.Exponent(); e > maxDecimalExp || e < -maxDecimalExp {
		return decimal.Zero, false
	}
	return d, true
}

// Price is a Decimal that must not be negative.
func Price(s string) (decimal.Decimal, bool) {
	d, ok := Decimal(s)
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Q normalizes a free-text search query: trimmed, at most 100 runes.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 100 {
		s = string([]rune(s)[:100])
	}
	return s
}

// Name validates a required display name/title.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 200 {
		return "", false
	}
	return s, true
}

// Text trims optional free text and caps its length.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 2000 {
		s = string([]rune(s)[:2000])
	}
	return s
}

// URL accepts absolute http(s) URLs only.
func URL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2048 {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	return s, true
}

func Currency(s string) (domain.Currency, bool) {
	c := domain.Currency(strings.TrimSpace(s))
	return c, c.Valid()
}

func AdType(s string) (domain.AdType, bool) {
	switch t := domain.AdType(strings.ToLower(strings.TrimSpace(s))); t {
	case domain.AdHorizontal, domain.AdVertical, domain.AdSquare:
		return t, true
	}
	return "", false
}

// Bool reads checkbox-style values ("on", "true", "1").
func Bool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true, true
	case "off", "false", "0", "no":
		return false, true
	}
	return false, false
}
