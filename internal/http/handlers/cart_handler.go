package handlers

import (
	"digitalstore/internal/log"
	"digitalstore/internal/services"
	"digitalstore/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sidCookie = "sid"

type CartHandler struct {
	Store *services.Storefront
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(sidCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sidCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

func (h *CartHandler) summary(c *fiber.Ctx, sid string) error {
	return c.JSON(fiber.Map{
		"currency": h.Store.Catalog.Currency(),
		"cart":     h.Store.CartSummary(sid),
	})
}

// GET /api/v1/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return h.summary(c, h.ensureSID(c))
}

// POST /api/v1/cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return badRequest(c, "missing productId")
	}
	if !h.Store.AddToCart(sid, id) {
		return notFound(c, "this item is no longer available")
	}
	log.Info(c, "cart.add", map[string]any{"product": id})
	if wantsHTML(c) {
		return c.Redirect("/")
	}
	return h.summary(c, sid)
}

// PATCH /api/v1/cart/:id
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return badRequest(c, "invalid product id")
	}
	qty, ok := validate.Qty(c.FormValue("quantity"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return badRequest(c, "enter a whole number quantity")
	}
	// quantities below 1 leave the line as it was
	h.Store.UpdateCartQuantity(sid, id, qty)
	return h.summary(c, sid)
}

// DELETE /api/v1/cart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return badRequest(c, "invalid product id")
	}
	if h.Store.RemoveFromCart(sid, id) {
		log.Info(c, "cart.remove", map[string]any{"product": id})
	}
	return h.summary(c, sid)
}
