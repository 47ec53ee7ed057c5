// Package testutils builds an in-memory HTTP app and request helpers for
// handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/amirasaad/banking/infra/attempts"
	"github.com/amirasaad/banking/internal/fixtures/memory"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// AdminToken is the admin key configured for test apps.
const AdminToken = "admin-token"

// Envelope mirrors common.Response with a typed payload.
type Envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Problem mirrors common.ProblemDetails.
type Problem struct {
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail"`
	Errors []string `json:"errors"`
}

// Config returns an app configuration suitable for tests. dir receives the export file.
func Config(dir string) *config.App {
	return &config.App{
		Env:       "test",
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}, PinCost: bcrypt.MinCost, MaxAttempts: 3, Lockout: time.Minute},
		RateLimit: &config.RateLimit{},
		Ledger:    &config.Ledger{DepositLimit: decimal.NewFromInt(10000), HistoryLimit: 10},
		Export:    &config.Export{Path: filepath.Join(dir, "customers.csv"), OnRegister: true, AdminToken: AdminToken},
	}
}

// NewApp wires the HTTP app over a fresh in-memory store.
func NewApp(cfg *config.App) (*fiber.App, *memory.Store) {
	store := memory.NewStore()
	a := app.New(&app.Deps{
		Uow:      memory.NewUoW(store),
		Attempts: attempts.NewMemoryStore(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	return webapi.SetupApp(a), store
}

// MakeRequestWithApp sends body as JSON with an optional bearer token.
func MakeRequestWithApp(app *fiber.App, method, path string, body any, token string) *http.Response {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				panic(err)
			}
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// Decode reads resp's JSON body into a new T and closes the body.
func Decode[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close() //nolint:errcheck
	var out T
	err := json.NewDecoder(resp.Body).Decode(&out)
	return out, err
}

// Jane is a valid registration.
func Jane() dto.Registration {
	return dto.Registration{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-05-01",
		Building:    "12",
		Street:      "Main St.",
		City:        "Montreal",
		Province:    "Quebec",
		PostalCode:  "H2Z 1A1",
		PIN:         "1234",
	}
}

// E2ETestSuite runs handler tests against an in-memory store.
type E2ETestSuite struct {
	suite.Suite
	App   *fiber.App
	Store *memory.Store
	Cfg   *config.App
}

func (s *E2ETestSuite) SetupTest() {
	s.Cfg = Config(s.T().TempDir())
	s.App, s.Store = NewApp(s.Cfg)
}

// Request is MakeRequestWithApp on the suite app.
func (s *E2ETestSuite) Request(method, path string, body any, token string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body, token)
}

// Register registers reg and returns the account number.
func (s *E2ETestSuite) Register(reg dto.Registration) uint {
	resp := s.Request(http.MethodPost, "/customers", reg, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	env, err := Decode[Envelope[struct {
		AccountNumber uint `json:"account_number"`
	}]](resp)
	s.Require().NoError(err)
	return env.Data.AccountNumber
}

// Login returns a session token for number.
func (s *E2ETestSuite) Login(number uint, pin string) string {
	resp := s.Request(http.MethodPost, "/auth/login", map[string]any{"account_number": number, "pin": pin}, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode, fmt.Sprintf("login %d", number))
	env, err := Decode[Envelope[struct {
		Token string `json:"token"`
	}]](resp)
	s.Require().NoError(err)
	return env.Data.Token
}
