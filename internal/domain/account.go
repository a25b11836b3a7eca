package domain

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	KindSavings      AccountKind = "savings"
	KindFixedDeposit AccountKind = "fixed_deposit"
	KindLoan         AccountKind = "loan"
	KindDebitCard    AccountKind = "debit_card"
	KindCreditCard   AccountKind = "credit_card"
)

// Account is the capability shared by every account variant. Callers pick
// variant-specific behavior (deposit vs charge vs pay) by asserting on the
// concrete type; there is deliberately no unified "transact" verb here.
type Account interface {
	Number() string
	HolderName() string
	Kind() AccountKind
	Record(description string, amount decimal.Decimal)
	Transactions() []Transaction
	Summary() AccountSummary
}

// AccountSummary is the stable typed shape for listing an account: the kind
// tag plus the one or two numeric fields that matter for the variant. Unset
// fields stay nil.
type AccountSummary struct {
	Number         string           `json:"number"`
	Kind           AccountKind      `json:"type"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	Principal      *decimal.Decimal `json:"principal,omitempty"`
	Outstanding    *decimal.Decimal `json:"outstanding,omitempty"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
	MaturityAmount *decimal.Decimal `json:"maturityAmount,omitempty"`
	LinkedNumber   string           `json:"linkedNumber,omitempty"`
}

// Card is the uniform charge/pay capability implemented by both card
// variants over their different backings (linked savings vs own outstanding).
type Card interface {
	Account
	Charge(amount decimal.Decimal) error
	Pay(amount decimal.Decimal) error
}

// baseAccount carries the identity and the transaction log common to all
// variants. The mutex also guards the embedding variant's money fields so
// that every read-check-mutate-log sequence is a single critical section.
type baseAccount struct {
	mu     sync.Mutex
	number string
	holder string
	log    []Transaction
}

func newBaseAccount(number, holder string) baseAccount {
	return baseAccount{number: number, holder: holder}
}

func (a *baseAccount) Number() string { return a.number }

func (a *baseAccount) HolderName() string { return a.holder }

func (a *baseAccount) Record(description string, amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record(description, amount)
}

// record appends without locking; the caller holds a.mu.
func (a *baseAccount) record(description string, amount decimal.Decimal) {
	a.log = append(a.log, newTransaction(description, amount))
}

// Transactions returns a copy of the log sorted by timestamp ascending.
// The sort is stable so entries sharing a timestamp tick keep insertion order.
func (a *baseAccount) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, len(a.log))
	copy(out, a.log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
