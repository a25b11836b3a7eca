package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/service"
)

// seedDemoUsers loads the demo fixtures: alice with a funded savings
// account, a fixed deposit, a loan and a credit card; bob with just the
// default savings account.
func seedDemoUsers(ctx context.Context, services *service.AppServices) error {
	alice, _, registerErr := services.UserService.Register(ctx, service.RegisterUserArgs{
		Username: "alice",
		Password: "alice123",
		Name:     "Alice Wonderland",
	})
	if registerErr != nil {
		return errors.Wrap(registerErr, "seeding demo users")
	}

	accounts := services.AccountService
	savings, openErr := accounts.OpenSavings(
		ctx, alice.Username(), decimal.NewFromInt(5000))
	if openErr != nil {
		return errors.Wrap(openErr, "seeding demo users")
	}
	if _, err := accounts.Deposit(
		ctx, alice.Username(), savings.Number(), decimal.NewFromInt(1500)); err != nil {
		return errors.Wrap(err, "seeding demo users")
	}
	if _, err := accounts.OpenFixedDeposit(
		ctx, alice.Username(), decimal.NewFromInt(10000), 12, decimal.NewFromFloat(5.5)); err != nil {
		return errors.Wrap(err, "seeding demo users")
	}
	if _, err := accounts.OpenLoan(
		ctx, alice.Username(), decimal.NewFromInt(20000), decimal.NewFromFloat(7.5), 24); err != nil {
		return errors.Wrap(err, "seeding demo users")
	}
	if _, err := accounts.IssueCreditCard(
		ctx, alice.Username(), decimal.NewFromInt(5000)); err != nil {
		return errors.Wrap(err, "seeding demo users")
	}

	if _, _, err := services.UserService.Register(ctx, service.RegisterUserArgs{
		Username: "bob",
		Password: "bob123",
		Name:     "Bob Builder",
	}); err != nil {
		return errors.Wrap(err, "seeding demo users")
	}
	return nil
}
