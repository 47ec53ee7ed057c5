// Package webapi provides the HTTP caller of the banking services.
// It is organized into sub-packages per concern:
//   - customer: registration and the caller's profile
//   - auth: login, PIN change and PIN recovery
//   - account: balance, deposits, withdrawals and history
//   - admin: operator endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/banking/pkg/app"
	accountweb "github.com/amirasaad/banking/webapi/account"
	adminweb "github.com/amirasaad/banking/webapi/admin"
	authweb "github.com/amirasaad/banking/webapi/auth"
	"github.com/amirasaad/banking/webapi/common"
	customerweb "github.com/amirasaad/banking/webapi/customer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, utils.StatusMessage(fe.Code), err, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	if rl := app.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rl.MaxRequests,
			Expiration:   rl.Window,
			KeyGenerator: clientIP,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	if app.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Banking API is running! 🚀")
	})

	customerweb.Routes(fiberApp, app.CustomerService, app.Config)
	authweb.Routes(fiberApp, app.AuthService, app.Config)
	accountweb.Routes(fiberApp, app.LedgerService, app.Config)
	adminweb.Routes(fiberApp, app.ExportService, app.Config)
	return fiberApp
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
