package service

import (
	"context"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	Get(ctx context.Context, userID int64) (*domain.Account, error)
	// GetForUpdate возвращает счет и блокирует его до конца транзакции.
	GetForUpdate(ctx context.Context, userID int64) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
	AddBalance(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.Account, error)
	SetEmailConfirmed(ctx context.Context, userID int64) error
}

type LedgerEntryRepository interface {
	Create(ctx context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.LedgerEntry, error)
	GetByTokenForUpdate(ctx context.Context, token uuid.UUID) (*domain.LedgerEntry, error)
	Find(ctx context.Context, filter repoargs.LedgerEntryFilter) ([]domain.LedgerEntry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EntryStatus) error
	// ClaimEffect атомарно переводит флаг effect_applied в значение applied. Возвращает false, если флаг уже
	// имел это значение.
	ClaimEffect(ctx context.Context, id int64, applied bool) (bool, error)
	CompletedTotals(ctx context.Context, accountID int64) ([]repoargs.KindTotal, error)
}

type WagerRepository interface {
	Create(ctx context.Context, args repoargs.CreateWager) (*domain.Wager, error)
	// GetPendingByMatchForUpdate возвращает ожидающие расчета ставки матча, упорядоченные по счету.
	GetPendingByMatchForUpdate(ctx context.Context, matchID int64) ([]domain.Wager, error)
	UpdateStatus(ctx context.Context, id int64, status domain.WagerStatus) error
	StatsByAccount(ctx context.Context, accountID int64) (*repoargs.WagerStats, error)
}

type MatchRepository interface {
	Upsert(ctx context.Context, args repoargs.UpsertMatch) (*domain.Match, error)
	Get(ctx context.Context, id int64) (*domain.Match, error)
	GetForShare(ctx context.Context, id int64) (*domain.Match, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Match, error)
	// ClaimResult завершает матч с результатом outcome, если результат еще не выставлен.
	// Возвращает false, если матч уже рассчитан.
	ClaimResult(ctx context.Context, id int64, outcome domain.Outcome) (bool, error)
	MarkStartedLive(ctx context.Context, now time.Time) (int64, error)
	UpsertOdds(ctx context.Context, odds []repoargs.UpsertOdds) error
	// BestPrice возвращает лучший коэффициент на исход среди букмекеров или ErrRecordNotFound.
	BestPrice(ctx context.Context, matchID int64, outcome domain.Outcome) (decimal.Decimal, error)
}

// Notifier доставляет события после фиксации изменений.
type Notifier interface {
	Notify(ctx context.Context, events ...domain.Event) error
}

// Limiter ограничивает частоту операций по ключу.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
