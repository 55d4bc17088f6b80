package services

import (
	"sync"

	"digitalstore/internal/domain"
	"digitalstore/internal/repos"
)

// Storefront is the surface the view layer talks to. It wires the catalog,
// carts and ad counters together and keeps the invariants that span them.
// Operations touching more than one service run under mu, so they happen
// one at a time relative to each other.
type Storefront struct {
	mu      sync.Mutex
	Catalog *CatalogService
	Carts   *CartService
	Metrics *AdMetricsService
}

func NewStorefront(kv repos.KV) *Storefront {
	return &Storefront{
		Catalog: NewCatalogService(kv),
		Carts:   NewCartService(),
		Metrics: NewAdMetricsService(kv),
	}
}

// VisibleProducts filters the catalog and marks featured products.
func (s *Storefront) VisibleProducts(query, minPrice, maxPrice string) []domain.VisibleProduct {
	filtered := FilterCatalog(s.Catalog.Products(), query, minPrice, maxPrice)
	hits := map[int]bool{}
	for _, id := range s.Catalog.HitIDs() {
		hits[id] = true
	}
	out := make([]domain.VisibleProduct, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, domain.VisibleProduct{Product: p, IsHit: hits[p.ID]})
	}
	return out
}

func (s *Storefront) CartSummary(sessionID string) domain.CartSummary {
	return s.Carts.View(sessionID)
}

// AddToCart adds the current catalog version of the product. Unknown ids are
// ignored and reported as false.
func (s *Storefront) AddToCart(sessionID string, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Catalog.Product(productID)
	if !ok {
		return false
	}
	s.Carts.Add(sessionID, p)
	return true
}

func (s *Storefront) RemoveFromCart(sessionID string, productID int) bool {
	return s.Carts.Remove(sessionID, productID)
}

func (s *Storefront) UpdateCartQuantity(sessionID string, productID, quantity int) bool {
	return s.Carts.UpdateQuantity(sessionID, productID, quantity)
}

// DeleteProduct removes the product from the catalog, the hit set and carts.
// It reports whether the product was in the catalog.
func (s *Storefront) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.Catalog.DeleteProduct(id)
	s.Carts.RemoveProduct(id)
	return removed
}

// DeleteAd removes the ad and its counters. Unknown ids change nothing.
func (s *Storefront) DeleteAd(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Catalog.DeleteAd(id) {
		return false
	}
	s.Metrics.Reset(id)
	return true
}

// ShowActiveAds returns the ads to display and counts one impression each.
func (s *Storefront) ShowActiveAds() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	ads := s.Catalog.ActiveAds()
	for _, ad := range ads {
		s.Metrics.RecordImpression(ad.ID)
	}
	return ads
}

// RecordImpression counts an impression for an existing ad.
func (s *Storefront) RecordImpression(adID int) (domain.AdMetrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Catalog.Ad(adID); !ok {
		return domain.AdMetrics{}, false
	}
	return s.Metrics.RecordImpression(adID), true
}

// RecordClickAndOpen counts a click on a known ad and returns the URL to open.
func (s *Storefront) RecordClickAndOpen(adID int) (domain.ClickResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad, ok := s.Catalog.Ad(adID)
	if !ok {
		return domain.ClickResult{}, false
	}
	return s.Metrics.RecordClick(ad), true
}
