package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/umbrella-ledger/internal/app"
	"github.com/fsdevblog/umbrella-ledger/internal/config"
	"github.com/fsdevblog/umbrella-ledger/internal/logger"
)

func main() {
	l := logger.New(os.Stderr)

	conf, err := config.LoadSettleConfig(os.Args[1:])
	if err != nil {
		l.WithError(err).Fatal("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if settleErr := app.Settle(ctx, conf, l, os.Stdout); settleErr != nil {
		stop()
		l.WithError(settleErr).Fatal("settle match")
	}
}
