package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LoanAccountTestSuite struct {
	suite.Suite
}

func TestLoanAccountSuite(t *testing.T) {
	suite.Run(t, new(LoanAccountTestSuite))
}

func (s *LoanAccountTestSuite) newLoan(principal int64) *LoanAccount {
	loan, err := NewLoanAccount(
		"TST-1001", "Test Holder",
		decimal.NewFromInt(principal), decimal.NewFromFloat(7.5), 24)
	s.Require().NoError(err)
	return loan
}

func (s *LoanAccountTestSuite) TestOutstandingStartsAtPrincipal() {
	loan := s.newLoan(20000)

	s.True(loan.Outstanding().Equal(loan.Principal()))

	log := loan.Transactions()
	s.Require().Len(log, 1)
	s.Equal("Loan issued", log[0].Description)
	s.True(log[0].Amount.Equal(decimal.NewFromInt(20000)))
}

func (s *LoanAccountTestSuite) TestPayReducesOutstanding() {
	loan := s.newLoan(20000)

	loan.Pay(decimal.NewFromInt(5000))
	s.True(loan.Outstanding().Equal(decimal.NewFromInt(15000)))

	log := loan.Transactions()
	s.Require().Len(log, 2)
	s.Equal("Loan payment", log[1].Description)
	s.True(log[1].Amount.Equal(decimal.NewFromInt(-5000)))
}

func (s *LoanAccountTestSuite) TestOverpaymentCappedAtOutstanding() {
	loan := s.newLoan(1000)

	loan.Pay(decimal.NewFromInt(2500))

	// capped to exactly zero, never negative; the excess is not applied
	s.True(loan.Outstanding().IsZero())

	log := loan.Transactions()
	s.Require().Len(log, 2)
	s.True(log[1].Amount.Equal(decimal.NewFromInt(-1000)))
}

func (s *LoanAccountTestSuite) TestPayIgnoresNonPositive() {
	loan := s.newLoan(1000)

	loan.Pay(decimal.Zero)
	loan.Pay(decimal.NewFromInt(-100))

	s.True(loan.Outstanding().Equal(decimal.NewFromInt(1000)))
	s.Len(loan.Transactions(), 1)
}

func (s *LoanAccountTestSuite) TestOutstandingMonotonicNonIncreasing() {
	loan := s.newLoan(1000)
	prev := loan.Outstanding()

	for _, amt := range []int64{300, 300, 300, 300} {
		loan.Pay(decimal.NewFromInt(amt))
		current := loan.Outstanding()
		s.True(current.LessThanOrEqual(prev), "outstanding grew: %s > %s", current, prev)
		s.False(current.IsNegative())
		prev = current
	}
	s.True(loan.Outstanding().IsZero())
}
