// Package admin exposes operator endpoints guarded by a static API key.
package admin

import (
	"crypto/subtle"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/service/export"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// Routes mounts the admin endpoints when an admin token is configured.
func Routes(app *fiber.App, exportSvc *export.Service, cfg *config.App) {
	if cfg.Export == nil || cfg.Export.AdminToken == "" {
		return
	}
	app.Post("/admin/export", keyGuard(cfg.Export.AdminToken), Export(exportSvc))
}

func keyGuard(token string) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator:  func(_ *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, "Missing or invalid admin token", fiber.StatusUnauthorized)
		},
	})
}

// Export rewrites the customer CSV.
// @Summary Export customers
// @Description Rewrites the customer CSV with every customer joined with its account.
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /admin/export [post]
// @Security AdminKey
func Export(exportSvc *export.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := exportSvc.Customers(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Export failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "CSV updated", fiber.Map{
			"rows": n,
			"path": exportSvc.Path(),
		})
	}
}
