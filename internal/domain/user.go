package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const accountCounterSeed = 1000

// User owns its accounts exclusively. The collection is append-only and the
// account-number counter never reuses a value, so numbers are unique within
// the user for the process lifetime. Uniqueness across users is only
// accidental (distinct username prefixes) and is deliberately not enforced.
type User struct {
	mu             sync.Mutex
	username       string
	passwordHash   string
	name           string
	createdAt      time.Time
	accounts       []Account
	accountCounter int
}

func NewUser(username, passwordHash, name string) *User {
	return &User{
		username:       username,
		passwordHash:   passwordHash,
		name:           name,
		createdAt:      time.Now(),
		accountCounter: accountCounterSeed,
	}
}

func (u *User) Username() string { return u.username }

func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) Name() string { return u.name }

func (u *User) CreatedAt() time.Time { return u.createdAt }

// nextAccountNumber increments the counter and combines it with an uppercase
// prefix of up to 3 runes taken from the username. Caller holds u.mu.
func (u *User) nextAccountNumber() string {
	u.accountCounter++
	prefix := []rune(u.username)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%d", strings.ToUpper(string(prefix)), u.accountCounter)
}

// Accounts returns a snapshot of the collection in creation order.
func (u *User) Accounts() []Account {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Account, len(u.accounts))
	copy(out, u.accounts)
	return out
}

// Account resolves an owned account by number; linear scan, the collections
// are small.
func (u *User) Account(number string) (Account, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.account(number)
}

func (u *User) account(number string) (Account, error) {
	for _, a := range u.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Savings resolves an owned savings account by number. Any other kind under
// that number is ErrWrongAccountKind.
func (u *User) Savings(number string) (*SavingsAccount, error) {
	a, err := u.Account(number)
	if err != nil {
		return nil, err
	}
	s, ok := a.(*SavingsAccount)
	if !ok {
		return nil, ErrWrongAccountKind
	}
	return s, nil
}

func (u *User) OpenSavings(initial decimal.Decimal) (*SavingsAccount, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := NewSavingsAccount(u.nextAccountNumber(), u.name, initial)
	if err != nil {
		return nil, err
	}
	u.accounts = append(u.accounts, s)
	return s, nil
}

func (u *User) OpenFixedDeposit(
	principal decimal.Decimal,
	termMonths int,
	annualRate decimal.Decimal,
) (*FixedDepositAccount, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fd, err := NewFixedDepositAccount(u.nextAccountNumber(), u.name, principal, termMonths, annualRate)
	if err != nil {
		return nil, err
	}
	u.accounts = append(u.accounts, fd)
	return fd, nil
}

func (u *User) OpenLoan(
	principal decimal.Decimal,
	annualRate decimal.Decimal,
	termMonths int,
) (*LoanAccount, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, err := NewLoanAccount(u.nextAccountNumber(), u.name, principal, annualRate, termMonths)
	if err != nil {
		return nil, err
	}
	u.accounts = append(u.accounts, l)
	return l, nil
}

// IssueDebitCard links a new debit card to an existing savings account owned
// by this user. The card keeps the number only; the account is re-resolved
// through the owner on every charge and pay.
func (u *User) IssueDebitCard(linkedNumber string) (*DebitCard, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	linked, err := u.account(linkedNumber)
	if err != nil {
		return nil, err
	}
	if _, ok := linked.(*SavingsAccount); !ok {
		return nil, ErrWrongAccountKind
	}
	d := newDebitCard(u.nextAccountNumber(), u.name, linkedNumber, u.Savings)
	u.accounts = append(u.accounts, d)
	return d, nil
}

func (u *User) IssueCreditCard(limit decimal.Decimal) (*CreditCard, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := NewCreditCard(u.nextAccountNumber(), u.name, limit)
	if err != nil {
		return nil, err
	}
	u.accounts = append(u.accounts, c)
	return c, nil
}
