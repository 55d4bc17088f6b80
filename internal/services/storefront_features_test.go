package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"digitalstore/internal/domain"
	"digitalstore/internal/repos"
	"digitalstore/internal/services"
)

const cartSession = "feature"

type storefrontTestContext struct {
	kv      *repos.MemoryKV
	sf      *services.Storefront
	cart    *services.Cart
	catalog []domain.Product
	visible []domain.Product
	click   domain.ClickResult
}

func (c *storefrontTestContext) reset() {
	c.kv = repos.NewMemoryKV()
	c.sf = services.NewStorefront(c.kv)
	c.cart = services.NewCart()
	c.catalog = nil
	c.visible = nil
	c.click = domain.ClickResult{}
}

func (c *storefrontTestContext) aCatalogWithProducts(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return err
		}
		c.catalog = append(c.catalog, domain.Product{ID: id, Name: "p" + row.Cells[0].Value, Price: price})
	}
	return nil
}

func (c *storefrontTestContext) theDefaultCatalog() error {
	c.catalog = c.sf.Catalog.Products()
	return nil
}

func (c *storefrontTestContext) iFilterWithMinPrice(lo string) error {
	c.visible = services.FilterCatalog(c.catalog, "", lo, "")
	return nil
}

func (c *storefrontTestContext) theVisibleProductIDsAre(want string) error {
	got := make([]string, 0, len(c.visible))
	for _, p := range c.visible {
		got = append(got, strconv.Itoa(p.ID))
	}
	if strings.Join(got, ",") != want {
		return fmt.Errorf("expected ids %q, got %q", want, strings.Join(got, ","))
	}
	return nil
}

func (c *storefrontTestContext) anEmptyCart() error {
	c.cart = services.NewCart()
	return nil
}

func (c *storefrontTestContext) iAddProductPricedToTheCart(id, price int) error {
	c.cart.Add(domain.Product{ID: id, Name: "p", Price: decimal.NewFromInt(int64(price))})
	return nil
}

func (c *storefrontTestContext) iSetTheQuantityOfProductTo(id, qty int) error {
	c.cart.UpdateQuantity(id, qty)
	return nil
}

func (c *storefrontTestContext) cartItems() []domain.CartLineItem {
	if items := c.sf.CartSummary(cartSession).Items; len(items) > 0 {
		return items
	}
	return c.cart.Items()
}

func (c *storefrontTestContext) theCartHasLines(n int) error {
	if got := len(c.cartItems()); got != n {
		return fmt.Errorf("expected %d cart lines, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartLineForProductHasQuantity(id, qty int) error {
	for _, it := range c.cartItems() {
		if it.ID == id {
			if it.Quantity != qty {
				return fmt.Errorf("expected quantity %d, got %d", qty, it.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("product %d not in cart", id)
}

func (c *storefrontTestContext) theCartTotalIs(want string) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if got := c.cart.TotalPrice(); !got.Equal(w) {
		return fmt.Errorf("expected total %s, got %s", w, got)
	}
	return nil
}

func (c *storefrontTestContext) anAdLinkingTo(id int, link string) error {
	_, err := c.sf.Catalog.AddAd(domain.AdForm{Title: "ad " + strconv.Itoa(id), Link: link})
	if err != nil {
		return err
	}
	for {
		ads := c.sf.Catalog.Ads()
		if ads[len(ads)-1].ID >= id {
			break
		}
		if _, err := c.sf.Catalog.AddAd(domain.AdForm{Title: "filler", Link: link}); err != nil {
			return err
		}
	}
	return nil
}

func (c *storefrontTestContext) adIsShown(id int) error {
	if _, ok := c.sf.RecordImpression(id); !ok {
		return fmt.Errorf("ad %d not found", id)
	}
	return nil
}

func (c *storefrontTestContext) adIsClicked(id int) error {
	res, ok := c.sf.RecordClickAndOpen(id)
	if !ok {
		return fmt.Errorf("ad %d not found", id)
	}
	c.click = res
	return nil
}

func (c *storefrontTestContext) storedCounter(key string) (int, error) {
	raw, ok, err := c.kv.Get(key)
	if err != nil || !ok {
		return 0, fmt.Errorf("key %q not stored", key)
	}
	var n int
	return n, json.Unmarshal(raw, &n)
}

func (c *storefrontTestContext) theStoredCountersForAdAre(id, impressions, clicks int) error {
	gotI, err := c.storedCounter(fmt.Sprintf("ad_impressions_%d", id))
	if err != nil {
		return err
	}
	gotC, err := c.storedCounter(fmt.Sprintf("ad_clicks_%d", id))
	if err != nil {
		return err
	}
	if gotI != impressions || gotC != clicks {
		return fmt.Errorf("expected {%d,%d}, got {%d,%d}", impressions, clicks, gotI, gotC)
	}
	return nil
}

func (c *storefrontTestContext) theClickOpened(url string) error {
	if c.click.OpenURL != url {
		return fmt.Errorf("expected to open %q, got %q", url, c.click.OpenURL)
	}
	return nil
}

func (c *storefrontTestContext) iToggleHitOnProduct(id int) error {
	c.sf.Catalog.ToggleHit(id)
	return nil
}

func (c *storefrontTestContext) productIsNotAHit(id int) error {
	if c.sf.Catalog.IsHit(id) {
		return fmt.Errorf("product %d is still a hit", id)
	}
	return nil
}

func (c *storefrontTestContext) iAddCatalogProductToTheCart(id int) error {
	if !c.sf.AddToCart(cartSession, id) {
		return fmt.Errorf("product %d not in catalog", id)
	}
	return nil
}

func (c *storefrontTestContext) iDeleteProduct(id int) error {
	c.sf.DeleteProduct(id)
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a catalog with products:$`, tc.aCatalogWithProducts)
	ctx.Step(`^the default catalog$`, tc.theDefaultCatalog)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^an ad (\d+) linking to "([^"]*)"$`, tc.anAdLinkingTo)

	// When steps
	ctx.Step(`^I filter with min price "([^"]*)"$`, tc.iFilterWithMinPrice)
	ctx.Step(`^I add product (\d+) priced (\d+) to the cart$`, tc.iAddProductPricedToTheCart)
	ctx.Step(`^I set the quantity of product (\d+) to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^ad (\d+) is shown$`, tc.adIsShown)
	ctx.Step(`^ad (\d+) is clicked$`, tc.adIsClicked)
	ctx.Step(`^I toggle hit on product (\d+)$`, tc.iToggleHitOnProduct)
	ctx.Step(`^I add catalog product (\d+) to the cart$`, tc.iAddCatalogProductToTheCart)
	ctx.Step(`^I delete product (\d+)$`, tc.iDeleteProduct)

	// Then steps
	ctx.Step(`^the visible product ids are "([^"]*)"$`, tc.theVisibleProductIDsAre)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the cart line for product (\d+) has quantity (\d+)$`, tc.theCartLineForProductHasQuantity)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the stored counters for ad (\d+) are (\d+) impressions and (\d+) clicks$`, tc.theStoredCountersForAdAre)
	ctx.Step(`^the click opened "([^"]*)"$`, tc.theClickOpened)
	ctx.Step(`^product (\d+) is not a hit$`, tc.productIsNotAHit)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/storefront.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
