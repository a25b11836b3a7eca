package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minibank/internal/config"
	"github.com/fsdevblog/minibank/internal/domain"
	"github.com/fsdevblog/minibank/internal/service"
	"github.com/fsdevblog/minibank/internal/transport/api"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting %s on %s", a.Config.BankName, a.Config.RunAddress)

	bank := domain.NewBank(a.Config.BankName)
	services := service.Factory(bank, []byte(a.Config.JWTUserSecret))

	if a.Config.SeedDemo {
		if seedErr := seedDemoUsers(notifyCtx, services); seedErr != nil {
			return seedErr
		}
		a.Logger.Info("demo users seeded")
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		AccountService: services.AccountService,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}
