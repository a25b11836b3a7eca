package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/domain"
)

type AccountsHandler struct {
	svs AccountServicer
}

func NewAccountsHandler(svs AccountServicer) *AccountsHandler {
	return &AccountsHandler{
		svs: svs,
	}
}

// Index GET RouteGroup + AccountsRoute. Lists the current user's accounts as
// type-tagged summaries.
func (h *AccountsHandler) Index(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summaries, err := h.svs.Summaries(reqCtx, currentUsername)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": summaries})
}

type OpenAccountParams struct {
	Type       domain.AccountKind `binding:"required,oneof=savings fixed_deposit loan" json:"type"`
	Initial    decimal.Decimal    `json:"initial"`
	Principal  decimal.Decimal    `json:"principal"`
	TermMonths int                `json:"termMonths"`
	AnnualRate decimal.Decimal    `json:"annualRate"`
}

// Create POST RouteGroup + AccountsRoute. Opens a savings, fixed deposit or
// loan account depending on the type tag.
func (h *AccountsHandler) Create(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)

	var params OpenAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var account domain.Account
	var err error
	switch params.Type {
	case domain.KindSavings:
		account, err = h.svs.OpenSavings(reqCtx, currentUsername, params.Initial)
	case domain.KindFixedDeposit:
		account, err = h.svs.OpenFixedDeposit(
			reqCtx, currentUsername, params.Principal, params.TermMonths, params.AnnualRate)
	case domain.KindLoan:
		account, err = h.svs.OpenLoan(
			reqCtx, currentUsername, params.Principal, params.AnnualRate, params.TermMonths)
	default:
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account.Summary()})
}

type TransactionResponseItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"createdAt"`
}

// Transactions GET RouteGroup + AccountTransactionsRoute. Full log of one
// account, timestamp ascending.
func (h *AccountsHandler) Transactions(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.Transactions(reqCtx, currentUsername, number)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			ID:          transaction.ID.String(),
			Description: transaction.Description,
			Amount:      transaction.Amount.InexactFloat64(),
			CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

type AmountParams struct {
	Amount decimal.Decimal `json:"amount"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Deposit POST RouteGroup + AccountDepositRoute. Credits a savings account;
// a non-positive amount is accepted and ignored.
func (h *AccountsHandler) Deposit(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Deposit(reqCtx, currentUsername, number, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance.InexactFloat64()})
}

// Withdraw POST RouteGroup + AccountWithdrawRoute. Debits a savings account;
// insufficient funds is a 402 and leaves the account untouched.
func (h *AccountsHandler) Withdraw(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Withdraw(reqCtx, currentUsername, number, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance.InexactFloat64()})
}

type OutstandingResponse struct {
	Outstanding float64 `json:"outstanding"`
}

// LoanPay POST RouteGroup + LoanPayRoute. Pays an instalment; overpayment is
// capped at the outstanding balance.
func (h *AccountsHandler) LoanPay(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	outstanding, err := h.svs.LoanPay(reqCtx, currentUsername, number, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &OutstandingResponse{Outstanding: outstanding.InexactFloat64()})
}
