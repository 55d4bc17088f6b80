package handlers

import (
	"net"

	"github.com/gofiber/fiber/v2"

	applog "digitalstore/internal/log"
)

// LocalOnly keeps the admin surface reachable from the machine running the
// store only. With enabled=false every caller passes.
func LocalOnly(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}
		ip := net.ParseIP(c.IP())
		if ip == nil || !ip.IsLoopback() {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		return c.Next()
	}
}
