package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/service/psswd"
	"github.com/fsdevblog/minibank/internal/transport/api/tokens"
)

type UserServiceTestSuite struct {
	suite.Suite
	bank        *domain.Bank
	jwtSecret   []byte
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.bank = domain.NewBank("Test Bank")
	s.jwtSecret = []byte("secret")
	s.userService = NewUserService(s.bank, s.jwtSecret, psswd.PasswordHash(""))
}

func (s *UserServiceTestSuite) TestRegister() {
	args := RegisterUserArgs{
		Username: "alice",
		Password: "alice123",
		Name:     "Alice Wonderland",
	}

	user, tokenStr, err := s.userService.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(args.Username, user.Username())
	s.NotEqual(args.Password, user.PasswordHash()) // stored hashed

	// the fresh user gets the default zero-balance savings account
	accounts := user.Accounts()
	s.Require().Len(accounts, 1)
	s.Equal(domain.KindSavings, accounts[0].Kind())

	token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.Equal(args.Username, token.Claims.(*tokens.UserClaims).Username) //nolint:errcheck

	// second registration under the same username fails
	_, _, dupErr := s.userService.Register(s.T().Context(), args)
	s.Require().ErrorIs(dupErr, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestLogin() {
	registerArgs := RegisterUserArgs{
		Username: "alice",
		Password: "alice123",
		Name:     "Alice Wonderland",
	}
	_, _, registerErr := s.userService.Register(s.T().Context(), registerArgs)
	s.Require().NoError(registerErr)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: LoginUserArgs{Username: "alice", Password: "alice123"}},
		{
			name:    "wrong username",
			args:    LoginUserArgs{Username: "wrong", Password: "alice123"},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "wrong password",
			args:    LoginUserArgs{Username: "alice", Password: "wrong pass"},
			wantErr: domain.ErrPasswordMissMatch,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.NotNil(user)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(t.args.Username, token.Claims.(*tokens.UserClaims).Username) //nolint:errcheck
			}
		})
	}
}
