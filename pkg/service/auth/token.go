package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenDisabled is returned by GenerateToken when no JWT config was given.
	ErrTokenDisabled = errors.New("token issuing is not configured")
	// ErrInvalidToken is returned when a token does not name an account.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// GenerateToken issues an HS256 session token whose subject is the account number.
func (s *Service) GenerateToken(accountNumber uint) (string, error) {
	log := s.logger.With("context", "GenerateToken", "account_number", accountNumber)
	if s.jwt == nil || s.jwt.Secret == "" {
		return "", ErrTokenDisabled
	}
	now := time.Now()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = strconv.FormatUint(uint64(accountNumber), 10)
	claims["jti"] = uuid.NewString()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.jwt.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return tokenString, nil
}

// AccountFromToken extracts the account number from a validated token.
func AccountFromToken(token *jwt.Token) (uint, error) {
	if token == nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrInvalidToken
	}
	n, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(n), nil
}
