package auth

import (
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/middleware"
	authsvc "github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/pin/verify", VerifyIdentity(authSvc))
	app.Post("/auth/pin/reset", ResetPIN(authSvc))
	app.Put("/accounts/me/pin", middleware.JwtProtected(cfg.Auth.Jwt), ChangePIN(authSvc))
}

// Login handles PIN authentication and returns a JWT token.
// @Summary Account login
// @Description Authenticate with account number and 4-digit PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		ok, number, err := authSvc.Login(c.UserContext(), input.AccountNumber, input.PIN)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid account number or PIN", nil, "Account number or PIN is incorrect", fiber.StatusUnauthorized)
		}
		token, err := authSvc.GenerateToken(number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token})
	}
}

// VerifyIdentity checks the identity details of a forgotten-PIN request.
// @Summary Verify identity for PIN recovery
// @Tags auth
// @Accept json
// @Produce json
// @Param request body IdentityInput true "Identity details"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/pin/verify [post]
func VerifyIdentity(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[IdentityInput](c)
		if input == nil {
			return err
		}
		ok, err := authSvc.VerifyIdentity(c.UserContext(), input.AccountNumber, input.FirstName, input.LastName, input.DateOfBirth)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Verification failed", err)
		}
		if !ok {
			return common.ProblemDetailsJSON(c, "Verification failed", authsvc.ErrIdentityMismatch)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Identity verified.", fiber.Map{"verified": true})
	}
}

// ResetPIN sets a new PIN after re-checking the identity.
// @Summary Reset a forgotten PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPINInput true "Identity details and new PIN"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /auth/pin/reset [post]
func ResetPIN(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ResetPINInput](c)
		if input == nil {
			return err
		}
		err = authSvc.ResetPIN(c.UserContext(), input.AccountNumber, input.FirstName, input.LastName, input.DateOfBirth, input.NewPIN)
		if err != nil {
			return common.ProblemDetailsJSON(c, "PIN reset failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "PIN reset successfully.", nil)
	}
}

// ChangePIN replaces the caller's PIN.
// @Summary Change PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePINInput true "Current and new PIN"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /accounts/me/pin [put]
// @Security BearerAuth
func ChangePIN(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[ChangePINInput](c)
		if input == nil {
			return err
		}
		msg, err := authSvc.ChangePIN(c.UserContext(), number, input.OldPIN, input.NewPIN)
		if err != nil {
			return common.ProblemDetailsJSON(c, "PIN change failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, msg, nil)
	}
}
