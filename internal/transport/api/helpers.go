package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/transport/api/middlewares"
)

func getUsernameFromContext(c *gin.Context) string {
	return c.GetString(middlewares.CurrentUsernameKey)
}

// abortWithDomainError maps domain failures onto HTTP statuses. Anything
// unrecognized is a private 500.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrNotEnoughBalance),
		errors.Is(err, domain.ErrCreditLimitExceeded):
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrWrongAccountKind),
		errors.Is(err, domain.ErrAmountNotPositive),
		errors.Is(err, domain.ErrNegativeOpening):
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
