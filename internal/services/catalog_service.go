package services

import (
	"slices"
	"sync"

	"github.com/go-faster/errors"

	"digitalstore/internal/domain"
	"digitalstore/internal/repos"
	"digitalstore/internal/validate"
)

var (
	ErrInvalidProduct = errors.New("product needs a name and a non-negative price")
	ErrInvalidAd      = errors.New("ad needs a title")
)

// CatalogService owns products, ads, the hit set and the currency label.
// Every mutation is written through to the KV store before it returns.
type CatalogService struct {
	mu       sync.Mutex
	kv       repos.KV
	products []domain.Product
	ads      []domain.Ad
	hits     []int
	currency domain.Currency
}

// NewCatalogService hydrates the catalog from kv. Missing or unreadable keys
// fall back to the seed catalog, "$" and an empty hit set.
func NewCatalogService(kv repos.KV) *CatalogService {
	s := &CatalogService{kv: kv}

	var products []domain.Product
	if load(kv, keyProducts, &products) {
		s.products = products
	} else {
		s.products = seedProducts()
	}

	var ads []domain.Ad
	if load(kv, keyAds, &ads) {
		s.ads = ads
	} else {
		s.ads = seedAds()
	}

	var hits []int
	if load(kv, keyHitProducts, &hits) {
		s.hits = hits
	}

	var cur domain.Currency
	if load(kv, keyCurrency, &cur) && cur != "" {
		s.currency = cur
	} else {
		s.currency = domain.DefaultCurrency
	}
	return s
}

func parseProductForm(f domain.ProductForm) (domain.Product, bool) {
	name, ok := validate.Name(f.Name)
	if !ok {
		return domain.Product{}, false
	}
	price, ok := validate.Price(f.Price)
	if !ok {
		return domain.Product{}, false
	}
	img, ok := validate.URL(f.Image)
	if !ok {
		img = domain.DefaultImage
	}
	return domain.Product{
		Name:        name,
		Description: validate.Text(f.Description),
		Price:       price,
		Category:    validate.Text(f.Category),
		Image:       img,
	}, true
}

func nextID[T any](items []T, id func(T) int) int {
	hi := 0
	for _, it := range items {
		if n := id(it); n > hi {
			hi = n
		}
	}
	return hi + 1
}

func (s *CatalogService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

func (s *CatalogService) Product(id int) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogService) AddProduct(form domain.ProductForm) (domain.Product, error) {
	p, ok := parseProductForm(form)
	if !ok {
		return domain.Product{}, ErrInvalidProduct
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = nextID(s.products, func(p domain.Product) int { return p.ID })
	s.products = append(s.products, p)
	save(s.kv, keyProducts, s.products)
	return p, nil
}

// EditProduct replaces the product with the given id. Unknown ids are ignored.
func (s *CatalogService) EditProduct(id int, form domain.ProductForm) error {
	p, ok := parseProductForm(form)
	if !ok {
		return ErrInvalidProduct
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(x domain.Product) bool { return x.ID == id })
	if i < 0 {
		return nil
	}
	p.ID = id
	s.products[i] = p
	save(s.kv, keyProducts, s.products)
	return nil
}

// DeleteProduct removes the product and its hit flag and reports whether the
// product was in the catalog. Deleting an unknown id changes nothing.
func (s *CatalogService) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p domain.Product) bool { return p.ID == id })
	removed := len(s.products) != n
	if removed {
		save(s.kv, keyProducts, s.products)
	}
	if i := slices.Index(s.hits, id); i >= 0 {
		s.hits = slices.Delete(s.hits, i, i+1)
		save(s.kv, keyHitProducts, s.hits)
	}
	return removed
}

// ToggleHit flips the featured flag and reports the new membership.
func (s *CatalogService) ToggleHit(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := false
	if i := slices.Index(s.hits, id); i >= 0 {
		s.hits = slices.Delete(s.hits, i, i+1)
	} else {
		s.hits = append(s.hits, id)
		on = true
	}
	save(s.kv, keyHitProducts, s.hits)
	return on
}

func (s *CatalogService) IsHit(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.hits, id)
}

func (s *CatalogService) HitIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.hits)
	if out == nil {
		out = []int{}
	}
	return out
}

func (s *CatalogService) Currency() domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency stores the label as given; callers restrict the choices.
func (s *CatalogService) SetCurrency(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = domain.Currency(c)
	save(s.kv, keyCurrency, s.currency)
}
