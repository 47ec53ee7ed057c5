package auth_test

import (
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func parse(t *testing.T, tokenString string) *jwt.Token {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	return token
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()
	svc, _, number := setup(t, auth.WithJWT(&config.Jwt{Secret: secret, Expiry: time.Hour}))

	tokenString, err := svc.GenerateToken(number)
	require.NoError(t, err)

	token := parse(t, tokenString)
	got, err := auth.AccountFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, number, got)

	claims := token.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateToken_Disabled(t *testing.T) {
	t.Parallel()
	svc, _, number := setup(t)

	_, err := svc.GenerateToken(number)
	assert.ErrorIs(t, err, auth.ErrTokenDisabled)

	svc, _, number = setup(t, auth.WithJWT(&config.Jwt{}))
	_, err = svc.GenerateToken(number)
	assert.ErrorIs(t, err, auth.ErrTokenDisabled)
}

func TestAccountFromToken_Invalid(t *testing.T) {
	t.Parallel()
	tests := map[string]*jwt.Token{
		"nil":         nil,
		"not valid":   {Valid: false, Claims: jwt.MapClaims{"sub": "10001"}},
		"no subject":  {Valid: true, Claims: jwt.MapClaims{}},
		"non numeric": {Valid: true, Claims: jwt.MapClaims{"sub": "abc"}},
		"wrong type":  {Valid: true, Claims: &jwt.RegisteredClaims{Subject: "10001"}},
	}
	for name, token := range tests {
		_, err := auth.AccountFromToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, name)
	}
}
