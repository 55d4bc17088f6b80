package handlers

import (
	"digitalstore/internal/log"
	"digitalstore/internal/services"
	"digitalstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, "this item is no longer available")
	}
	p, ok := h.Catalog.Product(id)
	if !ok {
		return notFound(c, "this item is no longer available")
	}
	return c.JSON(fiber.Map{"product": p, "isHit": h.Catalog.IsHit(id)})
}
