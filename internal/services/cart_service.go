package services

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"digitalstore/internal/domain"
)

// Cart holds at most one line item per product id, in first-added order.
// A Cart is not safe for concurrent use; CartService serializes access.
type Cart struct {
	items []domain.CartLineItem
}

func NewCart() *Cart { return &Cart{} }

func (c *Cart) index(id int) int {
	return slices.IndexFunc(c.items, func(it domain.CartLineItem) bool { return it.ID == id })
}

// Add bumps the quantity of an existing line or appends a copy of p.
func (c *Cart) Add(p domain.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, domain.CartLineItem{Product: p, Quantity: 1})
}

func (c *Cart) Remove(id int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

// UpdateQuantity sets the quantity of a line. Values below 1 are ignored.
func (c *Cart) UpdateQuantity(id, quantity int) bool {
	if quantity < 1 {
		return false
	}
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i].Quantity = quantity
	return true
}

func (c *Cart) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (c *Cart) Summary() domain.CartSummary {
	return domain.CartSummary{
		Items:      c.Items(),
		TotalCount: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}

// CartService keeps one in-memory cart per browser session. Carts are never
// persisted and vanish with the process.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartService() *CartService {
	return &CartService{carts: map[string]*Cart{}}
}

func (s *CartService) Add(sessionID string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = NewCart()
		s.carts[sessionID] = c
	}
	c.Add(p)
}

func (s *CartService) Remove(sessionID string, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c.Remove(productID)
	}
	return false
}

func (s *CartService) UpdateQuantity(sessionID string, productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c.UpdateQuantity(productID, quantity)
	}
	return false
}

func (s *CartService) View(sessionID string) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c.Summary()
	}
	return NewCart().Summary()
}

// RemoveProduct drops a product from every cart, used when it leaves the catalog.
func (s *CartService) RemoveProduct(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		c.Remove(productID)
	}
}
