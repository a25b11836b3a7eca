package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")

	ErrAmountNotPositive   = errors.New("amount must be positive")
	ErrNotEnoughBalance    = errors.New("not enough balance")
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	ErrWrongAccountKind    = errors.New("wrong account kind for operation")
	ErrNegativeOpening     = errors.New("opening amount must not be negative")
)
