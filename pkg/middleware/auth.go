// Package middleware holds fiber middleware shared by the HTTP routes.
package middleware

import (
	"errors"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the fiber.Locals key holding the validated *jwt.Token.
const TokenKey = "user"

// JwtProtected rejects requests without a valid HS256 bearer token.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	var secret string
	if cfg != nil {
		secret = cfg.Secret
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(secret)},
		ContextKey:   TokenKey,
		ErrorHandler: jwtError,
	})
}

// AccountNumber returns the account number of the authenticated caller.
func AccountNumber(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals(TokenKey).(*jwt.Token)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return auth.AccountFromToken(token)
}

func jwtError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized
	title := "Invalid or expired JWT"
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) || err.Error() == jwtware.ErrJWTMissingOrMalformed.Error() {
		status = fiber.StatusBadRequest
		title = "Missing or malformed JWT"
	}
	return c.Status(status).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    title,
		"status":   status,
		"detail":   err.Error(),
		"instance": c.OriginalURL(),
	}, "application/problem+json")
}
