package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountServicer interface {
	Open(ctx context.Context, args service.OpenAccountArgs) (*domain.Account, error)
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Entries(ctx context.Context, userID int64, filter service.EntriesFilter) ([]domain.LedgerEntry, error)
	Stats(ctx context.Context, userID int64) (*service.BettingStats, error)
	Reconcile(ctx context.Context, userID int64) (*service.Reconciliation, error)
}

type WagerServicer interface {
	Place(ctx context.Context, args service.PlaceWagerArgs) (*domain.Wager, error)
}

type SettlementServicer interface {
	Finish(ctx context.Context, matchID int64, outcome domain.Outcome) (*service.SettlementSummary, error)
}

type ReferralServicer interface {
	Activate(ctx context.Context, accountID int64) error
	VoidPendingBonuses(ctx context.Context, accountID int64) (int, error)
}

type MatchServicer interface {
	Upsert(ctx context.Context, args repoargs.UpsertMatch) (*domain.Match, error)
	UpsertOdds(ctx context.Context, matchID int64, quotes []service.OddsQuote) error
}

type LedgerServicer interface {
	Correct(ctx context.Context, token uuid.UUID, status domain.EntryStatus) (*domain.LedgerEntry, error)
}
