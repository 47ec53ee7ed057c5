package account

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/middleware"
	"github.com/amirasaad/banking/pkg/service/export"
	"github.com/amirasaad/banking/pkg/service/ledger"
	"github.com/amirasaad/banking/pkg/validation"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Routes registers the balance and ledger endpoints of the authenticated account.
//
// Routes:
//   - GET  /accounts/me/balance       : Current balance.
//   - POST /accounts/me/transactions  : Deposit or withdraw.
//   - GET  /accounts/me/transactions  : Recent history, optionally filtered or as CSV.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/accounts/me/balance", protected, GetBalance(ledgerSvc))
	app.Post("/accounts/me/transactions", protected, Record(ledgerSvc))
	app.Get("/accounts/me/transactions", protected, GetTransactions(ledgerSvc))
}

// GetBalance returns the caller's balance.
// @Summary Get balance
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response{data=BalanceResponse}
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/me/balance [get]
// @Security BearerAuth
func GetBalance(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		balance, err := ledgerSvc.Balance(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", BalanceResponse{
			AccountNumber: number,
			Balance:       money.Format(balance),
			Display:       money.Display(balance),
		})
	}
}

// Record applies a deposit or withdrawal.
// @Summary Deposit or withdraw
// @Description type is "deposit" or "withdrawal" in any case. Amounts must be at least 0.01 with at most two decimal places.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction"
// @Success 201 {object} common.Response{data=ConfirmationResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails "Insufficient funds or deposit limit exceeded"
// @Router /accounts/me/transactions [post]
// @Security BearerAuth
func Record(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		conf, err := ledgerSvc.Record(c.UserContext(), number, input.Type, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, conf.Message, toConfirmationResponse(conf))
	}
}

// GetTransactions lists recent ledger entries, newest first.
// @Summary Transaction history
// @Description Returns up to limit recent entries. The remaining parameters narrow and reorder that window. format=csv downloads it.
// @Tags accounts
// @Produce json
// @Produce text/csv
// @Param limit query int false "Entries to read (default 10, max 100)"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Param type query string false "deposit or withdrawal"
// @Param min query string false "Minimum amount"
// @Param max query string false "Maximum amount"
// @Param sort query string false "newest, oldest, highest or lowest"
// @Param last query int false "Keep only the N most recent before filtering"
// @Param format query string false "json or csv"
// @Success 200 {object} common.Response{data=[]TransactionResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /accounts/me/transactions [get]
// @Security BearerAuth
func GetTransactions(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := middleware.AccountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		filter, err := parseFilter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err, fiber.StatusBadRequest)
		}
		rows, err := ledgerSvc.History(c.UserContext(), number, c.QueryInt("limit", 0))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		rows = filter.Apply(rows)

		if strings.EqualFold(c.Query("format"), "csv") {
			var buf bytes.Buffer
			if err := export.WriteTransactions(&buf, rows); err != nil {
				return common.ProblemDetailsJSON(c, "Failed to export transactions", err)
			}
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="transactions-%d.csv"`, number))
			return c.Status(fiber.StatusOK).Send(buf.Bytes())
		}

		out := make([]TransactionResponse, 0, len(rows))
		for _, r := range rows {
			out = append(out, toTransactionResponse(r))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", out)
	}
}

func parseFilter(c *fiber.Ctx) (ledger.Filter, error) {
	var f ledger.Filter
	var problems []string

	parseDate := func(key string) time.Time {
		s := c.Query(key)
		if s == "" {
			return time.Time{}
		}
		t, err := time.Parse(customer.DateLayout, s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be YYYY-MM-DD", key))
		}
		return t
	}
	parseAmount := func(key string) decimal.NullDecimal {
		s := c.Query(key)
		if s == "" {
			return decimal.NullDecimal{}
		}
		d, err := money.Parse(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", key, err))
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	}

	f.From = parseDate("from")
	f.To = parseDate("to")
	f.MinAmount = parseAmount("min")
	f.MaxAmount = parseAmount("max")
	if s := c.Query("type"); s != "" {
		k, err := account.ParseKind(s)
		if err != nil {
			problems = append(problems, err.Error())
		}
		f.Kind = k
	}
	sort, err := ledger.ParseSortOrder(c.Query("sort"))
	if err != nil {
		problems = append(problems, err.Error())
	}
	f.Sort = sort
	f.LastN = c.QueryInt("last", 0)

	if len(problems) > 0 {
		return f, &validation.Errors{Problems: problems}
	}
	return f, nil
}
