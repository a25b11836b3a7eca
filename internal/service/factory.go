package service

import (
	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/service/psswd"
)

type AppServices struct {
	UserService    *UserService
	AccountService *AccountService
}

func Factory(bank *domain.Bank, jwtSecret []byte) *AppServices {
	return &AppServices{
		UserService:    NewUserService(bank, jwtSecret, psswd.PasswordHash("")),
		AccountService: NewAccountService(bank),
	}
}
