package handlers

import (
	"digitalstore/internal/domain"
	"digitalstore/internal/log"
	"digitalstore/internal/services"
	"digitalstore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdHandler struct {
	Store *services.Storefront
}

func (h *AdHandler) ad(c *fiber.Ctx) (domain.Ad, bool) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "ad"})
		return domain.Ad{}, false
	}
	return h.Store.Catalog.Ad(id)
}

// GET /api/v1/ads
func (h *AdHandler) Active(c *fiber.Ctx) error {
	return c.JSON(h.Store.Catalog.ActiveAds())
}

// GET /api/v1/ads/:id/metrics
func (h *AdHandler) Metrics(c *fiber.Ctx) error {
	ad, ok := h.ad(c)
	if !ok {
		return notFound(c, "ad not found")
	}
	return c.JSON(h.Store.Metrics.Metrics(ad.ID))
}

// POST /api/v1/ads/:id/impression
func (h *AdHandler) Impression(c *fiber.Ctx) error {
	ad, ok := h.ad(c)
	if !ok {
		return notFound(c, "ad not found")
	}
	m, ok := h.Store.RecordImpression(ad.ID)
	if !ok {
		return notFound(c, "ad not found")
	}
	return c.JSON(m)
}

// POST /api/v1/ads/:id/click
func (h *AdHandler) Click(c *fiber.Ctx) error {
	ad, ok := h.ad(c)
	if !ok {
		return notFound(c, "ad not found")
	}
	res, ok := h.Store.RecordClickAndOpen(ad.ID)
	if !ok {
		return notFound(c, "ad not found")
	}
	log.Info(c, "ad.click", map[string]any{"ad": ad.ID, "clicks": res.Metrics.Clicks})
	if wantsHTML(c) {
		if res.OpenURL == "" {
			return c.Redirect("/")
		}
		return c.Redirect(res.OpenURL)
	}
	return c.JSON(res)
}
