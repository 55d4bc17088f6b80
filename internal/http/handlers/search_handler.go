package handlers

import (
	"digitalstore/internal/domain"
	"digitalstore/internal/log"
	"digitalstore/internal/services"
	"digitalstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Store *services.Storefront
}

// Home renders the catalog page. Every active ad on the page counts one
// impression; HEAD requests display nothing and count nothing.
func (h *SearchHandler) Home(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	lo, hi := c.Query("min"), c.Query("max")

	var ads []domain.Ad
	if c.Method() == fiber.MethodHead {
		ads = h.Store.Catalog.ActiveAds()
	} else {
		ads = h.Store.ShowActiveAds()
	}
	return render(c, "home", fiber.Map{
		"Q": q, "Min": lo, "Max": hi,
		"Products": h.Store.VisibleProducts(q, lo, hi),
		"Ads":      ads,
		"Currency": h.Store.Catalog.Currency(),
		"Cart":     h.Store.CartSummary(c.Cookies(sidCookie)),
	})
}

// GET /api/v1/products
func (h *SearchHandler) Products(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	products := h.Store.VisibleProducts(q, c.Query("min"), c.Query("max"))
	log.Debug(c, "catalog.filter", map[string]any{"q": q, "count": len(products)})
	return c.JSON(fiber.Map{
		"currency": h.Store.Catalog.Currency(),
		"products": products,
	})
}

// GET /api/v1/currency
func (h *SearchHandler) Currency(c *fiber.Ctx) error {
	cur := h.Store.Catalog.Currency()
	return c.JSON(fiber.Map{"currency": cur, "code": cur.Code(), "choices": domain.Currencies})
}
