package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/config"
	"github.com/fsdevblog/umbrella-ledger/internal/events"
	"github.com/fsdevblog/umbrella-ledger/internal/jobs"
	"github.com/fsdevblog/umbrella-ledger/internal/ratelimit"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/memrepo"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/api"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/notify"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	rateLimitWindow   = time.Minute
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

	a.Logger.WithFields(logrus.Fields{
		"address":  a.Config.RunAddress,
		"storage":  a.Config.Storage,
		"events":   a.Config.EventsDriver,
		"redis":    a.Config.RedisAddress,
		"schedule": a.Config.ScheduleSpec,
	}).Info("Starting app")

	unitOfWork, closeStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %s", storageErr.Error())
	}
	defer closeStorage()

	publisher, pubErr := events.New(a.Config.EventsConfig(), a.Logger)
	if pubErr != nil {
		return fmt.Errorf("app run: %s", pubErr.Error())
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close events publisher")
		}
	}()

	factoryArgs := service.FactoryArgs{
		UOW:                   unitOfWork,
		Notifier:              notify.New(publisher, a.Logger).SetWorkers(a.Config.NotifyWorkers),
		MinStake:              a.Config.MinStake,
		WelcomeBalance:        a.Config.WelcomeBalance,
		ReferralBonusNew:      a.Config.ReferralBonusNew,
		ReferralBonusReferrer: a.Config.ReferralBonusReferrer,
		Logger:                a.Logger,
	}
	if a.Config.RedisAddress != "" {
		rdb, redisErr := ratelimit.NewRedisClient(notifyCtx, a.Config.RedisAddress)
		if redisErr != nil {
			return fmt.Errorf("app run: %s", redisErr.Error())
		}
		defer rdb.Close()
		factoryArgs.Limiter = ratelimit.NewRedisLimiter(rdb, a.Config.WagerRateLimit, rateLimitWindow)
	}

	services, sErr := service.Factory(factoryArgs)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		AccountService:    services.AccountService,
		WagerService:      services.WagerService,
		SettlementService: services.SettlementService,
		ReferralService:   services.ReferralService,
		MatchService:      services.MatchService,
		LedgerService:     services.LedgerService,
		JWTSecretKey:      []byte(a.Config.JWTSecret),
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 2) //nolint:mnd

	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	scheduler := jobs.New(services.MatchService, a.Config.ScheduleSpec, a.Logger)
	go func() {
		if runErr := scheduler.Run(notifyCtx); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initStorage подключает выбранное хранилище и возвращает функцию его закрытия.
func (a *App) initStorage(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.Storage == config.StorageMemory {
		a.Logger.Warn("in-memory storage, data will be lost on shutdown")
		return memrepo.New(), func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("init storage: %w", connErr)
	}
	unitOfWork, uowErr := pgrepo.NewUnitOfWork(conn)
	if uowErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init storage: %w", uowErr)
	}
	return unitOfWork, conn.Close, nil
}
