package customer

import (
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/middleware"
	customersvc "github.com/amirasaad/banking/pkg/service/customer"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers customer registration and the caller's own profile.
//
// Routes:
//   - POST  /customers    : Register a customer and open their account.
//   - GET   /accounts/me  : Personal details of the authenticated account.
//   - PATCH /accounts/me  : Partial update of address and contact details.
func Routes(app *fiber.App, customerSvc *customersvc.Service, cfg *config.App) {
	app.Post("/customers", Register(customerSvc))
	app.Get("/accounts/me", middleware.JwtProtected(cfg.Auth.Jwt), PersonalInfo(customerSvc))
	app.Patch("/accounts/me", middleware.JwtProtected(cfg.Auth.Jwt), UpdateProfile(customerSvc))
}

// Register creates a customer and its account.
// @Summary Register a customer
// @Description Validates every field, then creates the customer and an account with a 100.00 opening balance. All problems are reported at once.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body dto.Registration true "Registration form"
// @Success 201 {object} common.Response{data=RegisterResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /customers [post]
func Register(customerSvc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.Registration](c)
		if input == nil {
			return err
		}
		number, err := customerSvc.Register(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Registration failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registration complete.", RegisterResponse{
			AccountNumber: number,
		})
	}
}

// PersonalInfo returns the caller's personal details.
// @Summary Personal information
// @Tags customers
// @Produce json
// @Success 200 {object} common.Response{data=dto.PersonalInfo}
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/me [get]
// @Security BearerAuth
func PersonalInfo(customerSvc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		info, err := customerSvc.PersonalInfo(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load personal information", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Personal information fetched", info)
	}
}

// UpdateProfile applies a partial profile update.
// @Summary Update profile
// @Description Only the supplied fields change. Blank fields keep their stored value. Name and date of birth cannot be changed.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body dto.ProfilePatch true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/me [patch]
// @Security BearerAuth
func UpdateProfile(customerSvc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		patch, err := common.BindAndValidate[dto.ProfilePatch](c)
		if patch == nil {
			return err
		}
		if err := customerSvc.UpdateProfile(c.UserContext(), number, *patch); err != nil {
			return common.ProblemDetailsJSON(c, "Profile update failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated successfully.", nil)
	}
}
