package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/logger"
	"github.com/fsdevblog/minibank/internal/transport/api/mocks"
	"github.com/fsdevblog/minibank/internal/transport/api/testutils"
	"github.com/fsdevblog/minibank/internal/transport/api/tokens"
)

type AccountsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	jwtSecret          []byte
	token              string
}

func TestAccountsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountsHandlerTestSuite))
}

func (s *AccountsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var tokenErr error
	s.token, tokenErr = tokens.GenerateUserJWT("alice", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *AccountsHandlerTestSuite) TestAuthRequired() {
	s.mockAccountService.EXPECT().Summaries(gomock.Any(), gomock.Any()).Times(0)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AccountsRoute,
	})
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *AccountsHandlerTestSuite) TestIndex() {
	balance := decimal.NewFromInt(4500)
	s.mockAccountService.EXPECT().
		Summaries(gomock.Any(), "alice").
		Return([]domain.AccountSummary{
			{Number: "ALI-1001", Kind: domain.KindSavings, Balance: &balance},
		}, nil).Times(1)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AccountsRoute,
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	body, readErr := io.ReadAll(resp.Body)
	s.Require().NoError(readErr)
	s.Contains(string(body), `"ALI-1001"`)
	s.Contains(string(body), `"savings"`)
}

func (s *AccountsHandlerTestSuite) TestCreateFixedDeposit() {
	user := domain.NewUser("alice", "hash", "Alice Wonderland")
	fd, openErr := user.OpenFixedDeposit(
		decimal.NewFromInt(10000), 12, decimal.NewFromFloat(5.5))
	s.Require().NoError(openErr)

	s.mockAccountService.EXPECT().
		OpenFixedDeposit(gomock.Any(), "alice",
			decimal.NewFromInt(10000), 12, decimal.NewFromFloat(5.5)).
		Return(fd, nil).Times(1)

	payload := `{"type":"fixed_deposit","principal":10000,"termMonths":12,"annualRate":5.5}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + AccountsRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, resp.StatusCode)

	body, readErr := io.ReadAll(resp.Body)
	s.Require().NoError(readErr)
	s.Contains(string(body), `"fixed_deposit"`)
	s.Contains(string(body), `"maturityAmount":"10550"`)
}

func (s *AccountsHandlerTestSuite) TestCreateRejectsUnknownType() {
	payload := `{"type":"offshore"}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + AccountsRoute,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *AccountsHandlerTestSuite) TestDeposit() {
	s.mockAccountService.EXPECT().
		Deposit(gomock.Any(), "alice", "ALI-1001", decimal.NewFromInt(1500)).
		Return(decimal.NewFromInt(6500), nil).Times(1)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/user/accounts/ALI-1001/deposit",
		Body:   bytes.NewBufferString(`{"amount":1500}`),
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed BalanceResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.InDelta(6500, parsed.Balance, 0.001)
}

func (s *AccountsHandlerTestSuite) TestWithdraw() {
	s.mockAccountService.EXPECT().
		Withdraw(gomock.Any(), "alice", "ALI-1001", decimal.NewFromInt(2000)).
		Return(decimal.NewFromInt(4500), nil).Times(1)

	s.mockAccountService.EXPECT().
		Withdraw(gomock.Any(), "alice", "ALI-1001", decimal.NewFromInt(10000)).
		Return(decimal.NewFromInt(4500), domain.ErrNotEnoughBalance).Times(1)

	s.mockAccountService.EXPECT().
		Withdraw(gomock.Any(), "alice", "ALI-9999", decimal.NewFromInt(10)).
		Return(decimal.Zero, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		number     string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			number:     "ALI-1001",
			payload:    `{"amount":2000}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "insufficient funds",
			number:     "ALI-1001",
			payload:    `{"amount":10000}`,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "unknown account",
			number:     "ALI-9999",
			payload:    `{"amount":10}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			url := RouteGroup + "/user/accounts/" + t.number + "/withdraw"
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    url,
				Body:   strings.NewReader(t.payload),
			}, testutils.WithBearerToken(s.token))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(t.wantStatus, resp.StatusCode)
		})
	}
}

func (s *AccountsHandlerTestSuite) TestTransactions() {
	s.mockAccountService.EXPECT().
		Transactions(gomock.Any(), "alice", "ALI-1001").
		Return([]domain.Transaction{
			{Description: "Account opened", Amount: decimal.NewFromInt(5000), CreatedAt: time.Now()},
			{Description: "Deposit", Amount: decimal.NewFromInt(1500), CreatedAt: time.Now()},
		}, nil).Times(1)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/user/accounts/ALI-1001/transactions",
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed []TransactionResponseItem
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.Require().Len(parsed, 2)
	s.Equal("Account opened", parsed[0].Description)
	s.InDelta(1500, parsed[1].Amount, 0.001)
}

func (s *AccountsHandlerTestSuite) TestLoanPay() {
	s.mockAccountService.EXPECT().
		LoanPay(gomock.Any(), "alice", "ALI-1003", decimal.NewFromInt(5000)).
		Return(decimal.NewFromInt(15000), nil).Times(1)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/user/loans/ALI-1003/pay",
		Body:   bytes.NewBufferString(`{"amount":5000}`),
	}, testutils.WithBearerToken(s.token))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed OutstandingResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.InDelta(15000, parsed.Outstanding, 0.001)
}
