package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fsdevblog/umbrella-ledger/internal/config"
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/events"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/notify"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// Settle завершает матч из командной строки и печатает итог расчета в out.
func Settle(ctx context.Context, conf *config.SettleConfig, l *logrus.Logger, out io.Writer) error {
	conn, connErr := pgrepo.Connect(ctx, conf.MigrationsDir, conf.DatabaseDSN, l)
	if connErr != nil {
		return fmt.Errorf("settle: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := pgrepo.NewUnitOfWork(conn)
	if uowErr != nil {
		return fmt.Errorf("settle: %w", uowErr)
	}
	return settleWith(ctx, unitOfWork, conf.MatchID, domain.Outcome(conf.Outcome), l, out)
}

func settleWith(
	ctx context.Context,
	unitOfWork uow.UOW,
	matchID int64,
	outcome domain.Outcome,
	l *logrus.Logger,
	out io.Writer,
) error {
	ledger, ledgerErr := service.NewLedgerService(unitOfWork, l)
	if ledgerErr != nil {
		return fmt.Errorf("settle: %w", ledgerErr)
	}
	settlement := service.NewSettlementService(unitOfWork, ledger, notify.New(events.NewLogPublisher(l), l), l)

	summary, err := settlement.Finish(ctx, matchID, outcome)
	if summary == nil {
		return err //nolint:wrapcheck
	}

	_, printErr := fmt.Fprintf(out, "match %d settled as %s: won %d, lost %d, cancelled %d, paid %s\n",
		summary.MatchID, summary.Outcome, summary.Won, summary.Lost, summary.Cancelled,
		summary.TotalPaid.StringFixed(2)) //nolint:mnd
	if err != nil {
		return err //nolint:wrapcheck
	}
	return printErr //nolint:wrapcheck
}
