package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Amount is signed: positive means an
// inflow to the account, negative an outflow. Entries are immutable once
// appended; the log itself is append-only.
type Transaction struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Description string
	Amount      decimal.Decimal
}

func newTransaction(description string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Description: description,
		Amount:      amount,
	}
}
