package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minibank/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup               = "/api"
	RegisterRoute            = "/user/register"
	LoginRoute               = "/user/login"
	AccountsRoute            = "/user/accounts"
	AccountTransactionsRoute = "/user/accounts/:number/transactions"
	AccountDepositRoute      = "/user/accounts/:number/deposit"
	AccountWithdrawRoute     = "/user/accounts/:number/withdraw"
	CardsRoute               = "/user/cards"
	CardChargeRoute          = "/user/cards/:number/charge"
	CardPayRoute             = "/user/cards/:number/pay"
	CardMinDueRoute          = "/user/cards/:number/min-due"
	LoanPayRoute             = "/user/loans/:number/pay"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	AccountService AccountServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	accountsHandler := NewAccountsHandler(args.AccountService)
	cardsHandler := NewCardsHandler(args.AccountService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// everything below requires an authenticated user.
	api.GET(AccountsRoute, accountsHandler.Index)
	api.POST(AccountsRoute, accountsHandler.Create)
	api.GET(AccountTransactionsRoute, accountsHandler.Transactions)
	api.POST(AccountDepositRoute, accountsHandler.Deposit)
	api.POST(AccountWithdrawRoute, accountsHandler.Withdraw)
	api.POST(LoanPayRoute, accountsHandler.LoanPay)

	api.POST(CardsRoute, cardsHandler.Issue)
	api.POST(CardChargeRoute, cardsHandler.Charge)
	api.POST(CardPayRoute, cardsHandler.Pay)
	api.GET(CardMinDueRoute, cardsHandler.MinimumDue)
	return r
}
