package domain

import "github.com/shopspring/decimal"

// savingsResolver looks up a savings account by number at call time. The
// debit card holds a number, never a pointer into the owner's collection:
// the linked account is re-resolved on every operation.
type savingsResolver func(number string) (*SavingsAccount, error)

// DebitCard delegates money movement to its linked savings account. Charge
// is exactly as strict as the linked account's Withdraw; Pay deposits into
// the linked account (card "pay" means different things per variant on
// purpose).
type DebitCard struct {
	baseAccount
	linkedNumber string
	resolve      savingsResolver
}

func newDebitCard(number, holder, linkedNumber string, resolve savingsResolver) *DebitCard {
	d := &DebitCard{
		baseAccount:  newBaseAccount(number, holder),
		linkedNumber: linkedNumber,
		resolve:      resolve,
	}
	d.record("Debit card issued", decimal.Zero)
	return d
}

func (d *DebitCard) Kind() AccountKind { return KindDebitCard }

func (d *DebitCard) LinkedNumber() string { return d.linkedNumber }

// Charge withdraws from the linked savings account. The card logs its own
// "Card withdrawal" entry only after the withdrawal succeeded, so a failed
// attempt leaves both logs untouched.
func (d *DebitCard) Charge(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	linked, err := d.resolve(d.linkedNumber)
	if err != nil {
		return err
	}
	if err := linked.Withdraw(amount); err != nil {
		return err
	}
	d.Record("Card withdrawal", amount.Neg())
	return nil
}

// Pay deposits into the linked savings account. Non-positive amounts are
// silently ignored.
func (d *DebitCard) Pay(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	linked, err := d.resolve(d.linkedNumber)
	if err != nil {
		return err
	}
	linked.Deposit(amount)
	d.Record("Card deposit", amount)
	return nil
}

func (d *DebitCard) Summary() AccountSummary {
	return AccountSummary{
		Number:       d.number,
		Kind:         KindDebitCard,
		LinkedNumber: d.linkedNumber,
	}
}

var (
	minimumDueFloor = decimal.NewFromInt(10)
	minimumDueRate  = decimal.NewFromFloat(0.10)
)

// CreditCard maintains its own outstanding balance against an immutable
// credit limit. Invariant: 0 <= outstanding <= limit.
type CreditCard struct {
	baseAccount
	limit       decimal.Decimal
	outstanding decimal.Decimal
}

func NewCreditCard(number, holder string, limit decimal.Decimal) (*CreditCard, error) {
	if !limit.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	c := &CreditCard{
		baseAccount: newBaseAccount(number, holder),
		limit:       limit,
	}
	c.record("Credit card issued", decimal.Zero)
	return c, nil
}

func (c *CreditCard) Kind() AccountKind { return KindCreditCard }

func (c *CreditCard) CreditLimit() decimal.Decimal { return c.limit }

func (c *CreditCard) Outstanding() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outstanding
}

// Charge increases the outstanding balance. The limit is a strict ceiling:
// a charge that would push outstanding past it fails and changes nothing.
func (c *CreditCard) Charge(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.outstanding.Add(amount).GreaterThan(c.limit) {
		return ErrCreditLimitExceeded
	}
	c.outstanding = c.outstanding.Add(amount)
	c.record("Card charge", amount)
	return nil
}

// Pay reduces the outstanding balance, capped at what is owed (same policy
// as loan payments). Non-positive amounts are silently ignored.
func (c *CreditCard) Pay(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	payment := decimal.Min(amount, c.outstanding)
	c.outstanding = c.outstanding.Sub(payment)
	c.record("Card payment", payment.Neg())
	return nil
}

// MinimumDue is 10% of the outstanding balance with a fixed floor of 10.
func (c *CreditCard) MinimumDue() decimal.Decimal {
	return decimal.Max(minimumDueFloor, c.Outstanding().Mul(minimumDueRate))
}

func (c *CreditCard) Summary() AccountSummary {
	limit := c.limit
	outstanding := c.Outstanding()
	return AccountSummary{
		Number:      c.number,
		Kind:        KindCreditCard,
		CreditLimit: &limit,
		Outstanding: &outstanding,
	}
}
