package domain

import "github.com/shopspring/decimal"

// LoanAccount tracks a fixed principal and a shrinking outstanding balance.
// Rate and term are stored for reference only; payments do plain reduction.
type LoanAccount struct {
	baseAccount
	principal   decimal.Decimal
	outstanding decimal.Decimal
	annualRate  decimal.Decimal
	termMonths  int
}

func NewLoanAccount(
	number, holder string,
	principal decimal.Decimal,
	annualRate decimal.Decimal,
	termMonths int,
) (*LoanAccount, error) {
	if !principal.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	l := &LoanAccount{
		baseAccount: newBaseAccount(number, holder),
		principal:   principal,
		outstanding: principal,
		annualRate:  annualRate,
		termMonths:  termMonths,
	}
	l.record("Loan issued", principal)
	return l, nil
}

func (l *LoanAccount) Kind() AccountKind { return KindLoan }

func (l *LoanAccount) Principal() decimal.Decimal { return l.principal }

func (l *LoanAccount) AnnualRate() decimal.Decimal { return l.annualRate }

func (l *LoanAccount) TermMonths() int { return l.termMonths }

func (l *LoanAccount) Outstanding() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding
}

// Pay reduces the outstanding balance by min(amount, outstanding). Paying
// more than is owed is capped, not rejected: the excess is simply not
// applied. Non-positive amounts are silently ignored.
func (l *LoanAccount) Pay(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	payment := decimal.Min(amount, l.outstanding)
	l.outstanding = l.outstanding.Sub(payment)
	l.record("Loan payment", payment.Neg())
}

func (l *LoanAccount) Summary() AccountSummary {
	principal := l.principal
	outstanding := l.Outstanding()
	return AccountSummary{
		Number:      l.number,
		Kind:        KindLoan,
		Principal:   &principal,
		Outstanding: &outstanding,
	}
}
