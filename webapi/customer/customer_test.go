package customer_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type CustomerTestSuite struct {
	testutils.E2ETestSuite
}

func TestCustomerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerTestSuite))
}

func (s *CustomerTestSuite) TestRegister() {
	number := s.Register(testutils.Jane())
	s.GreaterOrEqual(number, uint(10001))

	balance, ok := s.Store.Balance(number)
	s.True(ok)
	s.Equal("100.00", balance.StringFixed(2))
	s.FileExists(s.Cfg.Export.Path)
}

func (s *CustomerTestSuite) TestRegister_ReportsEveryProblem() {
	reg := testutils.Jane()
	reg.FirstName = "J4ne"
	reg.PostalCode = "123"
	reg.PIN = "12"

	resp := s.Request(http.MethodPost, "/customers", reg, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get("Content-Type"))
	problem, err := testutils.Decode[testutils.Problem](resp)
	s.Require().NoError(err)
	s.Len(problem.Errors, 3)

	customers, _, _ := s.Store.Counts()
	s.Zero(customers)
}

func (s *CustomerTestSuite) TestRegister_MalformedBody() {
	resp := s.Request(http.MethodPost, "/customers", "{not json", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CustomerTestSuite) TestPersonalInfo() {
	number := s.Register(testutils.Jane())
	token := s.Login(number, "1234")

	resp := s.Request(http.MethodGet, "/accounts/me", nil, token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	env, err := testutils.Decode[testutils.Envelope[dto.PersonalInfo]](resp)
	s.Require().NoError(err)
	s.Equal("Jane", env.Data.FirstName)
	s.Equal("-", env.Data.Phone)
	s.Equal(number, env.Data.AccountNumber)
}

func (s *CustomerTestSuite) TestPersonalInfo_RequiresToken() {
	resp := s.Request(http.MethodGet, "/accounts/me", nil, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = s.Request(http.MethodGet, "/accounts/me", nil, "garbage")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *CustomerTestSuite) TestUpdateProfile() {
	number := s.Register(testutils.Jane())
	token := s.Login(number, "1234")

	resp := s.Request(http.MethodPatch, "/accounts/me", map[string]string{"email": "x@y.com"}, token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.Request(http.MethodGet, "/accounts/me", nil, token)
	env, err := testutils.Decode[testutils.Envelope[dto.PersonalInfo]](resp)
	s.Require().NoError(err)
	s.Equal("x@y.com", env.Data.Email)
	s.Equal("12, Main St., Montreal, Quebec, H2Z 1A1", env.Data.Address)

	resp = s.Request(http.MethodPatch, "/accounts/me", map[string]string{"phone": "12"}, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}
