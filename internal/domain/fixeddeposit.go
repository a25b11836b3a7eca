package domain

import "github.com/shopspring/decimal"

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// FixedDepositAccount is immutable after opening: the principal is locked in
// and the only ledger entry it ever carries is the opening one.
type FixedDepositAccount struct {
	baseAccount
	principal  decimal.Decimal
	termMonths int
	annualRate decimal.Decimal
}

func NewFixedDepositAccount(
	number, holder string,
	principal decimal.Decimal,
	termMonths int,
	annualRate decimal.Decimal,
) (*FixedDepositAccount, error) {
	if !principal.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	fd := &FixedDepositAccount{
		baseAccount: newBaseAccount(number, holder),
		principal:   principal,
		termMonths:  termMonths,
		annualRate:  annualRate,
	}
	fd.record("FD Opened", principal)
	return fd, nil
}

func (fd *FixedDepositAccount) Kind() AccountKind { return KindFixedDeposit }

func (fd *FixedDepositAccount) Principal() decimal.Decimal { return fd.principal }

func (fd *FixedDepositAccount) TermMonths() int { return fd.termMonths }

func (fd *FixedDepositAccount) AnnualRate() decimal.Decimal { return fd.annualRate }

// MaturityAmount projects the payout at term end under simple interest:
// principal + principal * (rate/100) * (months/12). Pure and deterministic.
func (fd *FixedDepositAccount) MaturityAmount() decimal.Decimal {
	years := decimal.NewFromInt(int64(fd.termMonths)).Div(monthsPerYear)
	interest := fd.principal.Mul(fd.annualRate.Div(hundred)).Mul(years)
	return fd.principal.Add(interest)
}

func (fd *FixedDepositAccount) Summary() AccountSummary {
	principal := fd.principal
	maturity := fd.MaturityAmount()
	return AccountSummary{
		Number:         fd.number,
		Kind:           KindFixedDeposit,
		Principal:      &principal,
		MaturityAmount: &maturity,
	}
}
