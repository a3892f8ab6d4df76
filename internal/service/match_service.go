package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MatchService каталог матчей и коэффициентов, наполняемый сервисом загрузки.
type MatchService struct {
	matchRepo MatchRepository
	l         *logrus.Entry
}

func NewMatchService(u uow.UOW, l *logrus.Logger) (*MatchService, error) {
	matchRepo, err := uow.GetRepositoryAs[MatchRepository](u, uow.RepositoryName(repoargs.MatchRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &MatchService{
		matchRepo: matchRepo,
		l:         l.WithFields(logrus.Fields{"component": "service", "module": "match"}),
	}, nil
}

func (s *MatchService) Upsert(ctx context.Context, args repoargs.UpsertMatch) (*domain.Match, error) {
	match, err := s.matchRepo.Upsert(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("upsert match: %w", err)
	}
	return match, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (*domain.Match, error) {
	match, err := s.matchRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

type OddsQuote struct {
	Bookmaker  string
	Outcome    domain.Outcome
	Price      decimal.Decimal
	LastUpdate time.Time
}

// UpsertOdds сохраняет котировки букмекеров по матчу. Уже принятые ставки новые котировки не затрагивают.
func (s *MatchService) UpsertOdds(ctx context.Context, matchID int64, quotes []OddsQuote) error {
	args := make([]repoargs.UpsertOdds, 0, len(quotes))
	for _, q := range quotes {
		if !q.Outcome.IsPickable() {
			return fmt.Errorf("upsert odds: outcome `%s`: %w", q.Outcome, domain.ErrInvalidOutcome)
		}
		if !domain.IsValidPrice(q.Price) {
			return fmt.Errorf("upsert odds: price %s: %w", q.Price, domain.ErrInvalidAmount)
		}
		args = append(args, repoargs.UpsertOdds{
			MatchID:    matchID,
			Bookmaker:  q.Bookmaker,
			Outcome:    q.Outcome,
			Price:      q.Price,
			LastUpdate: q.LastUpdate,
		})
	}
	if err := s.matchRepo.UpsertOdds(ctx, args); err != nil {
		return fmt.Errorf("upsert odds: %w", err)
	}
	return nil
}

// Quote возвращает лучший коэффициент на исход или ErrNoQuote.
func (s *MatchService) Quote(ctx context.Context, matchID int64, outcome domain.Outcome) (decimal.Decimal, error) {
	price, err := s.matchRepo.BestPrice(ctx, matchID, outcome)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("quote: %w", domain.ErrNoQuote)
		}
		return decimal.Zero, fmt.Errorf("quote: %w", err)
	}
	return price, nil
}

// MarkStartedLive переводит в live все upcoming матчи, время начала которых наступило.
func (s *MatchService) MarkStartedLive(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.matchRepo.MarkStartedLive(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("mark started matches: %w", err)
	}
	if n > 0 {
		s.l.WithField("matches", n).Info("matches went live")
	}
	return n, nil
}
