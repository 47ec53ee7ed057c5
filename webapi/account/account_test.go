package account_test

import (
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/amirasaad/banking/webapi/account"
	"github.com/amirasaad/banking/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
	number uint
	token  string
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.number = s.Register(testutils.Jane())
	s.token = s.Login(s.number, "1234")
}

func (s *AccountTestSuite) record(kind string, amount any) *http.Response {
	return s.Request(http.MethodPost, "/accounts/me/transactions", map[string]any{"type": kind, "amount": amount}, s.token)
}

func (s *AccountTestSuite) TestBalance() {
	resp := s.Request(http.MethodGet, "/accounts/me/balance", nil, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	env, err := testutils.Decode[testutils.Envelope[account.BalanceResponse]](resp)
	s.Require().NoError(err)
	s.Equal("100.00", env.Data.Balance)
	s.Equal("$100.00", env.Data.Display)
}

func (s *AccountTestSuite) TestDepositThenWithdraw() {
	resp := s.record("deposit", "50")
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	env, err := testutils.Decode[testutils.Envelope[account.ConfirmationResponse]](resp)
	s.Require().NoError(err)
	s.Equal("Deposit successful.", env.Message)
	s.Equal("150.00", env.Data.Balance)

	resp = s.record("WITHDRAWAL", 30)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	env, err = testutils.Decode[testutils.Envelope[account.ConfirmationResponse]](resp)
	s.Require().NoError(err)
	s.Equal("120.00", env.Data.Balance)

	resp = s.Request(http.MethodGet, "/accounts/me/transactions", nil, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	list, err := testutils.Decode[testutils.Envelope[[]account.TransactionResponse]](resp)
	s.Require().NoError(err)
	s.Require().Len(list.Data, 2)
	s.Equal("withdrawal", list.Data[0].Type)
	s.Equal("30.00", list.Data[0].Amount)
	s.Equal("deposit", list.Data[1].Type)
}

func (s *AccountTestSuite) TestRejections() {
	tests := []struct {
		kind   string
		amount any
		status int
	}{
		{"withdrawal", "150", fiber.StatusUnprocessableEntity},
		{"deposit", "10000.01", fiber.StatusUnprocessableEntity},
		{"deposit", "0", fiber.StatusBadRequest},
		{"deposit", "1.005", fiber.StatusBadRequest},
		{"transfer", "5", fiber.StatusBadRequest},
		{"", "5", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		resp := s.record(tt.kind, tt.amount)
		s.Equal(tt.status, resp.StatusCode, "%s %v", tt.kind, tt.amount)
		_ = resp.Body.Close()
	}
	balance, _ := s.Store.Balance(s.number)
	s.Equal("100.00", balance.StringFixed(2))
	s.Empty(s.Store.Ledger(s.number))
}

func (s *AccountTestSuite) TestTransactions_FilterAndCSV() {
	for _, r := range []struct {
		kind   string
		amount string
	}{{"deposit", "200"}, {"withdrawal", "40"}, {"deposit", "15"}} {
		resp := s.record(r.kind, r.amount)
		s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp := s.Request(http.MethodGet, "/accounts/me/transactions?type=deposit&sort=highest", nil, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	list, err := testutils.Decode[testutils.Envelope[[]account.TransactionResponse]](resp)
	s.Require().NoError(err)
	s.Require().Len(list.Data, 2)
	s.Equal("200.00", list.Data[0].Amount)
	s.Equal("15.00", list.Data[1].Amount)

	resp = s.Request(http.MethodGet, "/accounts/me/transactions?limit=1", nil, s.token)
	list, err = testutils.Decode[testutils.Envelope[[]account.TransactionResponse]](resp)
	s.Require().NoError(err)
	s.Len(list.Data, 1)

	resp = s.Request(http.MethodGet, "/accounts/me/transactions?from=yesterday&sort=sideways", nil, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	problem, err := testutils.Decode[testutils.Problem](resp)
	s.Require().NoError(err)
	s.Len(problem.Errors, 2)

	resp = s.Request(http.MethodGet, "/accounts/me/transactions?format=csv", nil, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("text/csv", resp.Header.Get("Content-Type"))
	defer resp.Body.Close() //nolint:errcheck
	records, err := csv.NewReader(resp.Body).ReadAll()
	s.Require().NoError(err)
	s.Len(records, 4)
	s.Equal("$15.00", records[1][3])
}
