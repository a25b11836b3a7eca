package domain

import "github.com/shopspring/decimal"

// SavingsAccount holds a non-negative balance mutated by deposits and
// withdrawals.
type SavingsAccount struct {
	baseAccount
	balance decimal.Decimal
}

func NewSavingsAccount(number, holder string, initial decimal.Decimal) (*SavingsAccount, error) {
	if initial.IsNegative() {
		return nil, ErrNegativeOpening
	}
	s := &SavingsAccount{
		baseAccount: newBaseAccount(number, holder),
		balance:     initial,
	}
	s.record("Account opened", initial)
	return s, nil
}

func (s *SavingsAccount) Kind() AccountKind { return KindSavings }

func (s *SavingsAccount) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Deposit credits the balance. Non-positive amounts are silently ignored:
// the call succeeds and nothing changes (validate-then-noop contract).
func (s *SavingsAccount) Deposit(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = s.balance.Add(amount)
	s.record("Deposit", amount)
}

// Withdraw debits the balance. It fails with ErrAmountNotPositive or
// ErrNotEnoughBalance, leaving balance and log untouched; the balance can
// never go negative.
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount.GreaterThan(s.balance) {
		return ErrNotEnoughBalance
	}
	s.balance = s.balance.Sub(amount)
	s.record("Withdraw", amount.Neg())
	return nil
}

func (s *SavingsAccount) Summary() AccountSummary {
	balance := s.Balance()
	return AccountSummary{
		Number:  s.number,
		Kind:    KindSavings,
		Balance: &balance,
	}
}
