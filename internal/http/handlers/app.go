package handlers

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"digitalstore/internal/domain"
	applog "digitalstore/internal/log"
	"digitalstore/web"
)

const maxBodySize = 1 << 20 // 1 MiB

// NewEngine loads the embedded page templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("price", domain.FormatPrice)
	return engine
}

// ErrorHandler logs the failure and answers with a friendly message that
// never carries the internal error text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := "Something went wrong. Please try again."
	if code == fiber.StatusNotFound {
		msg = "Page not found"
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	} else {
		applog.Warn(c, "request.error", err, nil)
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	// Avoid leaking internals; best-effort render
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NewApp builds the fiber app with middlewares and all routes.
func NewApp(d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewEngine(),
		BodyLimit:    maxBodySize,
		ErrorHandler: ErrorHandler,
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: applog.Writer()}))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        d.Config.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	Register(app, d)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}

// Register mounts the storefront routes on app.
func Register(app fiber.Router, d *Deps) {
	app.Get("/", d.SearchHandler.Home)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api/v1")
	api.Get("/products", d.SearchHandler.Products)
	api.Get("/products/:id", d.ProductHandler.Detail)
	api.Get("/currency", d.SearchHandler.Currency)

	api.Get("/cart", d.CartHandler.View)
	api.Post("/cart", d.CartHandler.Add)
	api.Patch("/cart/:id", d.CartHandler.Update)
	api.Delete("/cart/:id", d.CartHandler.Remove)

	api.Get("/ads", d.AdHandler.Active)
	api.Get("/ads/:id/metrics", d.AdHandler.Metrics)
	api.Post("/ads/:id/impression", d.AdHandler.Impression)
	api.Post("/ads/:id/click", d.AdHandler.Click)

	admin := api.Group("/admin", LocalOnly(d.Config.AdminLocalOnly))
	admin.Get("/products", d.AdminHandler.Products)
	admin.Post("/products", d.AdminHandler.AddProduct)
	admin.Put("/products/:id", d.AdminHandler.EditProduct)
	admin.Delete("/products/:id", d.AdminHandler.DeleteProduct)
	admin.Post("/products/:id/hit", d.AdminHandler.ToggleHit)
	admin.Put("/currency", d.AdminHandler.SetCurrency)
	admin.Get("/ads", d.AdminHandler.Ads)
	admin.Post("/ads", d.AdminHandler.AddAd)
	admin.Put("/ads/:id", d.AdminHandler.EditAd)
	admin.Delete("/ads/:id", d.AdminHandler.DeleteAd)
	admin.Post("/ads/:id/active", d.AdminHandler.ToggleAdActive)
	admin.Get("/storage", d.AdminHandler.Storage)
}
