package handlers

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"

	"digitalstore/internal/domain"
	applog "digitalstore/internal/log"
	"digitalstore/internal/services"
	"digitalstore/internal/validate"
)

type AdminHandler struct {
	Store *services.Storefront
	KV    Store
}

func productForm(c *fiber.Ctx) domain.ProductForm {
	return domain.ProductForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
		Image:       c.FormValue("image"),
	}
}

func adForm(c *fiber.Ctx) domain.AdForm {
	return domain.AdForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Image:       c.FormValue("image"),
		Link:        c.FormValue("link"),
		Type:        c.FormValue("type"),
		Active:      c.FormValue("active"),
	}
}

func adminID(c *fiber.Ctx) (int, bool) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "value": c.Params("id")})
	}
	return id, ok
}

// GET /api/v1/admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"currency": h.Store.Catalog.Currency(),
		"products": h.Store.Catalog.Products(),
		"hits":     h.Store.Catalog.HitIDs(),
	})
}

// POST /api/v1/admin/products
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	p, err := h.Store.Catalog.AddProduct(productForm(c))
	if errors.Is(err, services.ErrInvalidProduct) {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return badRequest(c, "fill in the name and a valid price")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product": p.ID, "name": p.Name, "price": p.Price.String()})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/admin/products/:id
func (h *AdminHandler) EditProduct(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Store.Catalog.EditProduct(id, productForm(c)); err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			applog.Security(c, "validation.fail", map[string]any{"field": "product", "product": id})
			return badRequest(c, "fill in the name and a valid price")
		}
		return err
	}
	p, ok := h.Store.Catalog.Product(id)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	applog.Audit(c, "admin.product.edit", map[string]any{"product": id, "name": p.Name, "price": p.Price.String()})
	return c.JSON(p)
}

// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if h.Store.DeleteProduct(id) {
		applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/v1/admin/products/:id/hit
func (h *AdminHandler) ToggleHit(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if _, ok := h.Store.Catalog.Product(id); !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	hit := h.Store.Catalog.ToggleHit(id)
	applog.Audit(c, "admin.product.hit", map[string]any{"product": id, "hit": hit})
	return c.JSON(fiber.Map{"id": id, "isHit": hit})
}

// PUT /api/v1/admin/currency
func (h *AdminHandler) SetCurrency(c *fiber.Ctx) error {
	cur, ok := validate.Currency(c.FormValue("currency"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "currency"})
		return badRequest(c, "pick one of the offered currencies")
	}
	h.Store.Catalog.SetCurrency(string(cur))
	applog.Audit(c, "admin.currency.set", map[string]any{"currency": cur.Code()})
	return c.JSON(fiber.Map{"currency": cur})
}

// GET /api/v1/admin/ads
func (h *AdminHandler) Ads(c *fiber.Ctx) error {
	type adRow struct {
		domain.Ad
		Metrics domain.AdMetrics `json:"metrics"`
	}
	ads := h.Store.Catalog.Ads()
	rows := make([]adRow, 0, len(ads))
	for _, ad := range ads {
		rows = append(rows, adRow{Ad: ad, Metrics: h.Store.Metrics.Metrics(ad.ID)})
	}
	return c.JSON(rows)
}

// POST /api/v1/admin/ads
func (h *AdminHandler) AddAd(c *fiber.Ctx) error {
	ad, err := h.Store.Catalog.AddAd(adForm(c))
	if errors.Is(err, services.ErrInvalidAd) {
		applog.Security(c, "validation.fail", map[string]any{"field": "ad"})
		return badRequest(c, "an ad needs a title")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "admin.ad.add", map[string]any{"ad": ad.ID, "title": ad.Title, "active": ad.Active})
	return c.Status(fiber.StatusCreated).JSON(ad)
}

// PUT /api/v1/admin/ads/:id
func (h *AdminHandler) EditAd(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Store.Catalog.EditAd(id, adForm(c)); err != nil {
		if errors.Is(err, services.ErrInvalidAd) {
			applog.Security(c, "validation.fail", map[string]any{"field": "ad", "ad": id})
			return badRequest(c, "an ad needs a title")
		}
		return err
	}
	ad, ok := h.Store.Catalog.Ad(id)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	applog.Audit(c, "admin.ad.edit", map[string]any{"ad": id, "title": ad.Title})
	return c.JSON(ad)
}

// DELETE /api/v1/admin/ads/:id
func (h *AdminHandler) DeleteAd(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if h.Store.DeleteAd(id) {
		applog.Audit(c, "admin.ad.delete", map[string]any{"ad": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/v1/admin/ads/:id/active
func (h *AdminHandler) ToggleAdActive(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if _, ok := h.Store.Catalog.Ad(id); !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	active := h.Store.Catalog.ToggleAdActive(id)
	applog.Audit(c, "admin.ad.active", map[string]any{"ad": id, "active": active})
	return c.JSON(fiber.Map{"id": id, "active": active})
}

// GET /api/v1/admin/storage dumps every persisted key with its raw JSON value.
func (h *AdminHandler) Storage(c *fiber.Ctx) error {
	keys, err := h.KV.Keys()
	if err != nil {
		applog.Error(c, "admin.storage.list.fail", err, nil)
		return err
	}
	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		v, ok, err := h.KV.Get(k)
		if err != nil {
			applog.Error(c, "admin.storage.get.fail", err, map[string]any{"key": k})
			return err
		}
		if ok && json.Valid(v) {
			out[k] = v
		}
	}
	return c.JSON(out)
}
