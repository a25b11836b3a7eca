package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/transport/api/tokens"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	bank           *domain.Bank
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(bank *domain.Bank, jwtTokenSecret []byte, psswd PasswordHasher) *UserService {
	return &UserService{
		bank:           bank,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}
}

type RegisterUserArgs struct {
	Username string
	Password string
	Name     string
}

// Register adds a user to the bank registry, opens the default zero-balance
// savings account and issues a jwt token. Returns the created user, the
// token and an error.
func (s *UserService) Register(_ context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	hash, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", errors.Wrap(hashErr, "registering user")
	}

	user := domain.NewUser(args.Username, hash, args.Name)
	if addErr := s.bank.AddUser(user); addErr != nil {
		return nil, "", errors.Wrap(addErr, "registering user")
	}

	// every fresh user starts with an empty savings account
	if _, openErr := user.OpenSavings(decimal.Zero); openErr != nil {
		return nil, "", errors.Wrap(openErr, "registering user")
	}

	token, tokenErr := tokens.GenerateUserJWT(user.Username(), JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", errors.Wrap(tokenErr, "registering user")
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login checks the credential pair and issues a jwt token. Unknown username
// and wrong password come back as distinct domain errors; the transport
// collapses them into one 401.
func (s *UserService) Login(_ context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.bank.FindUser(args.Username)
	if findErr != nil {
		return nil, "", errors.Wrap(findErr, "logging in user")
	}

	if !s.psswd.ComparePassword(args.Password, user.PasswordHash()) {
		return nil, "", errors.Wrap(domain.ErrPasswordMissMatch, "logging in user")
	}

	token, tokenErr := tokens.GenerateUserJWT(user.Username(), JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", errors.Wrap(tokenErr, "logging in user")
	}
	return user, token, nil
}
