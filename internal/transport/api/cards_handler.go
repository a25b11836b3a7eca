package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/domain"
)

type CardsHandler struct {
	svs AccountServicer
}

func NewCardsHandler(svs AccountServicer) *CardsHandler {
	return &CardsHandler{
		svs: svs,
	}
}

type IssueCardParams struct {
	Type         domain.AccountKind `binding:"required,oneof=debit_card credit_card" json:"type"`
	LinkedNumber string             `json:"linkedNumber"`
	CreditLimit  decimal.Decimal    `json:"creditLimit"`
}

// Issue POST RouteGroup + CardsRoute. Issues a debit card linked to one of
// the user's savings accounts, or a credit card with a limit.
func (h *CardsHandler) Issue(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)

	var params IssueCardParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var card domain.Account
	var err error
	switch params.Type {
	case domain.KindDebitCard:
		card, err = h.svs.IssueDebitCard(reqCtx, currentUsername, params.LinkedNumber)
	case domain.KindCreditCard:
		card, err = h.svs.IssueCreditCard(reqCtx, currentUsername, params.CreditLimit)
	default:
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card.Summary()})
}

// Charge POST RouteGroup + CardChargeRoute. A debit charge withdraws from
// the linked savings account; a credit charge must stay within the limit.
func (h *CardsHandler) Charge(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.svs.ChargeCard(reqCtx, currentUsername, number, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": summary})
}

// Pay POST RouteGroup + CardPayRoute. A credit card payment reduces the
// debt; a debit card payment deposits into the linked savings account.
func (h *CardsHandler) Pay(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.svs.PayCard(reqCtx, currentUsername, number, params.Amount)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": summary})
}

type MinimumDueResponse struct {
	MinimumDue float64 `json:"minimumDue"`
}

// MinimumDue GET RouteGroup + CardMinDueRoute. Credit cards only.
func (h *CardsHandler) MinimumDue(c *gin.Context) {
	currentUsername := getUsernameFromContext(c)
	number := c.Param("number")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	minDue, err := h.svs.MinimumDue(reqCtx, currentUsername, number)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &MinimumDueResponse{MinimumDue: minDue.InexactFloat64()})
}
