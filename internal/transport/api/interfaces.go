package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/service"
)

// UserServicer exists for the handler mocks.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type AccountServicer interface {
	Summaries(ctx context.Context, username string) ([]domain.AccountSummary, error)
	Transactions(ctx context.Context, username, number string) ([]domain.Transaction, error)
	OpenSavings(
		ctx context.Context,
		username string,
		initial decimal.Decimal,
	) (*domain.SavingsAccount, error)
	OpenFixedDeposit(
		ctx context.Context,
		username string,
		principal decimal.Decimal,
		termMonths int,
		annualRate decimal.Decimal,
	) (*domain.FixedDepositAccount, error)
	OpenLoan(
		ctx context.Context,
		username string,
		principal decimal.Decimal,
		annualRate decimal.Decimal,
		termMonths int,
	) (*domain.LoanAccount, error)
	IssueDebitCard(ctx context.Context, username, linkedNumber string) (*domain.DebitCard, error)
	IssueCreditCard(
		ctx context.Context,
		username string,
		limit decimal.Decimal,
	) (*domain.CreditCard, error)
	Deposit(
		ctx context.Context,
		username, number string,
		amount decimal.Decimal,
	) (decimal.Decimal, error)
	Withdraw(
		ctx context.Context,
		username, number string,
		amount decimal.Decimal,
	) (decimal.Decimal, error)
	ChargeCard(
		ctx context.Context,
		username, number string,
		amount decimal.Decimal,
	) (domain.AccountSummary, error)
	PayCard(
		ctx context.Context,
		username, number string,
		amount decimal.Decimal,
	) (domain.AccountSummary, error)
	LoanPay(
		ctx context.Context,
		username, number string,
		amount decimal.Decimal,
	) (decimal.Decimal, error)
	MinimumDue(ctx context.Context, username, number string) (decimal.Decimal, error)
}
