package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/domain"
)

// AccountService is the use-case layer over the account domain. Every method
// resolves the owning user first; account numbers are meaningful only within
// the authenticated user's own collection.
type AccountService struct {
	bank *domain.Bank
}

func NewAccountService(bank *domain.Bank) *AccountService {
	return &AccountService{bank: bank}
}

// Summaries lists the user's accounts in creation order as type-tagged
// summary views.
func (s *AccountService) Summaries(_ context.Context, username string) ([]domain.AccountSummary, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "listing accounts")
	}
	accounts := user.Accounts()
	out := make([]domain.AccountSummary, len(accounts))
	for i, a := range accounts {
		out[i] = a.Summary()
	}
	return out, nil
}

// Transactions returns the full log of one account, timestamp ascending.
func (s *AccountService) Transactions(
	_ context.Context,
	username, number string,
) ([]domain.Transaction, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "listing transactions")
	}
	account, accErr := user.Account(number)
	if accErr != nil {
		return nil, errors.Wrap(accErr, "listing transactions")
	}
	return account.Transactions(), nil
}

func (s *AccountService) OpenSavings(
	_ context.Context,
	username string,
	initial decimal.Decimal,
) (*domain.SavingsAccount, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "opening savings account")
	}
	account, openErr := user.OpenSavings(initial)
	return account, errors.Wrap(openErr, "opening savings account")
}

func (s *AccountService) OpenFixedDeposit(
	_ context.Context,
	username string,
	principal decimal.Decimal,
	termMonths int,
	annualRate decimal.Decimal,
) (*domain.FixedDepositAccount, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "opening fixed deposit")
	}
	account, openErr := user.OpenFixedDeposit(principal, termMonths, annualRate)
	return account, errors.Wrap(openErr, "opening fixed deposit")
}

func (s *AccountService) OpenLoan(
	_ context.Context,
	username string,
	principal decimal.Decimal,
	annualRate decimal.Decimal,
	termMonths int,
) (*domain.LoanAccount, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "opening loan")
	}
	account, openErr := user.OpenLoan(principal, annualRate, termMonths)
	return account, errors.Wrap(openErr, "opening loan")
}

func (s *AccountService) IssueDebitCard(
	_ context.Context,
	username, linkedNumber string,
) (*domain.DebitCard, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "issuing debit card")
	}
	card, issueErr := user.IssueDebitCard(linkedNumber)
	return card, errors.Wrap(issueErr, "issuing debit card")
}

func (s *AccountService) IssueCreditCard(
	_ context.Context,
	username string,
	limit decimal.Decimal,
) (*domain.CreditCard, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, errors.Wrap(err, "issuing credit card")
	}
	card, issueErr := user.IssueCreditCard(limit)
	return card, errors.Wrap(issueErr, "issuing credit card")
}

// Deposit credits a savings account and reports the post-state balance.
// A non-positive amount is accepted and ignored, per the account contract.
func (s *AccountService) Deposit(
	_ context.Context,
	username, number string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	account, err := s.savings(username, number)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "depositing")
	}
	account.Deposit(amount)
	return account.Balance(), nil
}

// Withdraw debits a savings account and reports the post-state balance.
func (s *AccountService) Withdraw(
	_ context.Context,
	username, number string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	account, err := s.savings(username, number)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "withdrawing")
	}
	if withdrawErr := account.Withdraw(amount); withdrawErr != nil {
		return account.Balance(), errors.Wrap(withdrawErr, "withdrawing")
	}
	return account.Balance(), nil
}

// ChargeCard charges a debit or credit card and returns its post-state
// summary.
func (s *AccountService) ChargeCard(
	_ context.Context,
	username, number string,
	amount decimal.Decimal,
) (domain.AccountSummary, error) {
	card, err := s.card(username, number)
	if err != nil {
		return domain.AccountSummary{}, errors.Wrap(err, "charging card")
	}
	if chargeErr := card.Charge(amount); chargeErr != nil {
		return card.Summary(), errors.Wrap(chargeErr, "charging card")
	}
	return card.Summary(), nil
}

// PayCard pays against a card: a credit card payment reduces the debt, a
// debit card payment deposits into the linked savings account.
func (s *AccountService) PayCard(
	_ context.Context,
	username, number string,
	amount decimal.Decimal,
) (domain.AccountSummary, error) {
	card, err := s.card(username, number)
	if err != nil {
		return domain.AccountSummary{}, errors.Wrap(err, "paying card")
	}
	if payErr := card.Pay(amount); payErr != nil {
		return card.Summary(), errors.Wrap(payErr, "paying card")
	}
	return card.Summary(), nil
}

// LoanPay pays an instalment against a loan and reports the outstanding
// post-state.
func (s *AccountService) LoanPay(
	_ context.Context,
	username, number string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "paying loan")
	}
	account, accErr := user.Account(number)
	if accErr != nil {
		return decimal.Zero, errors.Wrap(accErr, "paying loan")
	}
	loan, ok := account.(*domain.LoanAccount)
	if !ok {
		return decimal.Zero, errors.Wrap(domain.ErrWrongAccountKind, "paying loan")
	}
	loan.Pay(amount)
	return loan.Outstanding(), nil
}

// MinimumDue reports the minimum due of a credit card.
func (s *AccountService) MinimumDue(
	_ context.Context,
	username, number string,
) (decimal.Decimal, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "minimum due")
	}
	account, accErr := user.Account(number)
	if accErr != nil {
		return decimal.Zero, errors.Wrap(accErr, "minimum due")
	}
	credit, ok := account.(*domain.CreditCard)
	if !ok {
		return decimal.Zero, errors.Wrap(domain.ErrWrongAccountKind, "minimum due")
	}
	return credit.MinimumDue(), nil
}

func (s *AccountService) savings(username, number string) (*domain.SavingsAccount, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, err
	}
	return user.Savings(number)
}

func (s *AccountService) card(username, number string) (domain.Card, error) {
	user, err := s.bank.FindUser(username)
	if err != nil {
		return nil, err
	}
	account, accErr := user.Account(number)
	if accErr != nil {
		return nil, accErr
	}
	card, ok := account.(domain.Card)
	if !ok {
		return nil, domain.ErrWrongAccountKind
	}
	return card, nil
}
