package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditCardTestSuite struct {
	suite.Suite
}

func TestCreditCardSuite(t *testing.T) {
	suite.Run(t, new(CreditCardTestSuite))
}

func (s *CreditCardTestSuite) newCard(limit int64) *CreditCard {
	card, err := NewCreditCard("TST-1001", "Test Holder", decimal.NewFromInt(limit))
	s.Require().NoError(err)
	return card
}

// Scenario: limit 5000, charge 4000 ok, min due 400, charge 2000 rejected,
// pay 4500 capped down to the outstanding 4000.
func (s *CreditCardTestSuite) TestChargePayScenario() {
	card := s.newCard(5000)

	s.Require().NoError(card.Charge(decimal.NewFromInt(4000)))
	s.True(card.Outstanding().Equal(decimal.NewFromInt(4000)))
	s.True(card.MinimumDue().Equal(decimal.NewFromInt(400)))

	s.Require().ErrorIs(card.Charge(decimal.NewFromInt(2000)), ErrCreditLimitExceeded)
	s.True(card.Outstanding().Equal(decimal.NewFromInt(4000)))

	s.Require().NoError(card.Pay(decimal.NewFromInt(4500)))
	s.True(card.Outstanding().IsZero())
}

func (s *CreditCardTestSuite) TestOutstandingNeverExceedsLimit() {
	card := s.newCard(100)

	for range 5 {
		_ = card.Charge(decimal.NewFromInt(30))
		s.True(card.Outstanding().LessThanOrEqual(card.CreditLimit()))
	}
	// 3 * 30 fit, the 4th would hit 120
	s.True(card.Outstanding().Equal(decimal.NewFromInt(90)))
}

func (s *CreditCardTestSuite) TestChargeToExactLimitAllowed() {
	card := s.newCard(100)

	s.Require().NoError(card.Charge(decimal.NewFromInt(100)))
	s.True(card.Outstanding().Equal(card.CreditLimit()))
}

func (s *CreditCardTestSuite) TestMinimumDueFloor() {
	card := s.newCard(5000)

	// 10% of 50 is below the floor of 10
	s.Require().NoError(card.Charge(decimal.NewFromInt(50)))
	s.True(card.MinimumDue().Equal(decimal.NewFromInt(10)))
}

func (s *CreditCardTestSuite) TestChargeRejectsNonPositive() {
	card := s.newCard(100)

	s.Require().ErrorIs(card.Charge(decimal.Zero), ErrAmountNotPositive)
	s.Require().ErrorIs(card.Charge(decimal.NewFromInt(-5)), ErrAmountNotPositive)
	s.True(card.Outstanding().IsZero())
}

func (s *CreditCardTestSuite) TestPayIgnoresNonPositive() {
	card := s.newCard(100)
	s.Require().NoError(card.Charge(decimal.NewFromInt(60)))

	s.Require().NoError(card.Pay(decimal.Zero))
	s.Require().NoError(card.Pay(decimal.NewFromInt(-10)))
	s.True(card.Outstanding().Equal(decimal.NewFromInt(60)))
}

type DebitCardTestSuite struct {
	suite.Suite
	user *User
}

func TestDebitCardSuite(t *testing.T) {
	suite.Run(t, new(DebitCardTestSuite))
}

func (s *DebitCardTestSuite) SetupTest() {
	s.user = NewUser("carol", "hash", "Carol Danvers")
}

func (s *DebitCardTestSuite) issue(initial int64) (*DebitCard, *SavingsAccount) {
	savings, err := s.user.OpenSavings(decimal.NewFromInt(initial))
	s.Require().NoError(err)
	card, issueErr := s.user.IssueDebitCard(savings.Number())
	s.Require().NoError(issueErr)
	return card, savings
}

func (s *DebitCardTestSuite) TestChargeWithdrawsFromLinkedAccount() {
	card, savings := s.issue(500)

	s.Require().NoError(card.Charge(decimal.NewFromInt(200)))
	s.True(savings.Balance().Equal(decimal.NewFromInt(300)))

	cardLog := card.Transactions()
	s.Require().Len(cardLog, 2) // issued + withdrawal
	s.Equal("Card withdrawal", cardLog[1].Description)
	s.True(cardLog[1].Amount.Equal(decimal.NewFromInt(-200)))

	savingsLog := savings.Transactions()
	s.Require().Len(savingsLog, 2)
	s.Equal("Withdraw", savingsLog[1].Description)
}

// A debit charge is exactly as strict as the linked account's withdraw: a
// failed attempt leaves both logs untouched.
func (s *DebitCardTestSuite) TestChargeFailureTouchesNothing() {
	card, savings := s.issue(100)

	s.Require().ErrorIs(card.Charge(decimal.NewFromInt(101)), ErrNotEnoughBalance)

	s.True(savings.Balance().Equal(decimal.NewFromInt(100)))
	s.Len(card.Transactions(), 1)    // only "Debit card issued"
	s.Len(savings.Transactions(), 1) // only "Account opened"
}

// Debit card "pay" is a deposit into the linked account, not a debt
// payment.
func (s *DebitCardTestSuite) TestPayDepositsIntoLinkedAccount() {
	card, savings := s.issue(100)

	s.Require().NoError(card.Pay(decimal.NewFromInt(50)))
	s.True(savings.Balance().Equal(decimal.NewFromInt(150)))

	cardLog := card.Transactions()
	s.Require().Len(cardLog, 2)
	s.Equal("Card deposit", cardLog[1].Description)
	s.True(cardLog[1].Amount.Equal(decimal.NewFromInt(50)))
}

func (s *DebitCardTestSuite) TestPayIgnoresNonPositive() {
	card, savings := s.issue(100)

	s.Require().NoError(card.Pay(decimal.Zero))
	s.True(savings.Balance().Equal(decimal.NewFromInt(100)))
	s.Len(card.Transactions(), 1)
}
