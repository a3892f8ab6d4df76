package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const moneyPlaces = domain.MoneyPlaces

type WagerService struct {
	uow      uow.UOW
	ledger   *LedgerService
	limiter  Limiter
	notifier Notifier
	minStake decimal.Decimal
	now      func() time.Time
	l        *logrus.Entry
}

type WagerServiceArgs struct {
	UOW      uow.UOW
	Ledger   *LedgerService
	Limiter  Limiter
	Notifier Notifier
	MinStake decimal.Decimal
	Logger   *logrus.Logger
}

func NewWagerService(args WagerServiceArgs) *WagerService {
	return &WagerService{
		uow:      args.UOW,
		ledger:   args.Ledger,
		limiter:  args.Limiter,
		notifier: args.Notifier,
		minStake: args.MinStake,
		now:      time.Now,
		l:        args.Logger.WithFields(logrus.Fields{"component": "service", "module": "wager"}),
	}
}

type PlaceWagerArgs struct {
	AccountID int64
	MatchID   int64
	Outcome   domain.Outcome
	Stake     decimal.Decimal
}

// Place принимает ставку: создает ее вместе с завершенной записью вида bet, списывающей ставку с баланса.
// Ставка и запись создаются в одной транзакции, при любой ошибке не создается ничего.
//
// Ошибки: ErrInvalidOutcome, ErrInvalidAmount, ErrBelowMinimumStake, ErrRateLimited, ErrRecordNotFound (матч),
// ErrMatchNotOpen, ErrNoQuote, ErrUnknownAccount, ErrInsufficientFunds. Ошибка доставки события после
// фиксации возвращается как *domain.IntegrationError вместе с созданной ставкой.
func (s *WagerService) Place(ctx context.Context, args PlaceWagerArgs) (*domain.Wager, error) {
	if err := s.validate(args); err != nil {
		return nil, fmt.Errorf("place wager: %w", err)
	}
	if err := s.checkRate(ctx, args.AccountID); err != nil {
		return nil, fmt.Errorf("place wager: %w", err)
	}

	var (
		wager *domain.Wager
		match *domain.Match
	)
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var placeErr error
		wager, match, placeErr = s.placeTx(ctx, tx, args)
		return placeErr
	})
	if err != nil {
		return nil, fmt.Errorf("place wager: %w", err)
	}

	s.l.WithFields(logrus.Fields{
		"wager":        wager.ID,
		"account":      wager.AccountID,
		"match":        wager.MatchID,
		"outcome":      wager.Outcome,
		"stake":        wager.Stake,
		"odds":         wager.Odds,
		"potentialWin": wager.PotentialWin,
	}).Info("wager placed")

	event := domain.NewEvent(domain.EventWagerPlaced, strconv.FormatInt(wager.AccountID, 10), map[string]any{
		"wager_id":      wager.ID,
		"account_id":    wager.AccountID,
		"match_id":      wager.MatchID,
		"match":         match.Title(),
		"outcome":       wager.Outcome,
		"stake":         wager.Stake.StringFixed(moneyPlaces),
		"odds":          wager.Odds.String(),
		"potential_win": wager.PotentialWin.StringFixed(moneyPlaces),
	})
	return wager, notify(ctx, s.notifier, s.l, "wager.placed", []domain.Event{event})
}

func (s *WagerService) validate(args PlaceWagerArgs) error {
	if !args.Outcome.IsPickable() {
		return fmt.Errorf("outcome `%s`: %w", args.Outcome, domain.ErrInvalidOutcome)
	}
	if !args.Stake.IsPositive() || !domain.IsMoney(args.Stake) {
		return fmt.Errorf("stake %s: %w", args.Stake, domain.ErrInvalidAmount)
	}
	if args.Stake.LessThan(s.minStake) {
		return fmt.Errorf("stake %s < %s: %w", args.Stake, s.minStake, domain.ErrBelowMinimumStake)
	}
	return nil
}

// checkRate ограничивает частоту ставок одного счета. Недоступность ограничителя не блокирует ставки.
func (s *WagerService) checkRate(ctx context.Context, accountID int64) error {
	if s.limiter == nil {
		return nil
	}
	allowed, err := s.limiter.Allow(ctx, "wager:"+strconv.FormatInt(accountID, 10))
	if err != nil {
		s.l.WithError(err).WithField("account", accountID).Warn("rate limiter unavailable")
		return nil
	}
	if !allowed {
		return domain.ErrRateLimited
	}
	return nil
}

func (s *WagerService) placeTx(
	ctx context.Context,
	tx uow.TX,
	args PlaceWagerArgs,
) (*domain.Wager, *domain.Match, error) {
	matches, err := getRepo[MatchRepository](tx, repoargs.MatchRepoName)
	if err != nil {
		return nil, nil, err
	}
	match, err := matches.GetForShare(ctx, args.MatchID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	if !match.IsOpenAt(s.now()) {
		return nil, nil, fmt.Errorf("match %d is %s: %w", match.ID, match.Status, domain.ErrMatchNotOpen)
	}

	odds, err := matches.BestPrice(ctx, args.MatchID, args.Outcome)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("match %d outcome %s: %w", args.MatchID, args.Outcome, domain.ErrNoQuote)
		}
		return nil, nil, err //nolint:wrapcheck
	}

	account, err := s.ledger.lockAccountTx(ctx, tx, args.AccountID)
	if err != nil {
		return nil, nil, err
	}
	if account.Balance.LessThan(args.Stake) {
		return nil, nil, fmt.Errorf("balance %s < stake %s: %w", account.Balance, args.Stake, domain.ErrInsufficientFunds)
	}

	wagers, err := getRepo[WagerRepository](tx, repoargs.WagerRepoName)
	if err != nil {
		return nil, nil, err
	}
	wager, err := wagers.Create(ctx, repoargs.CreateWager{
		AccountID:    args.AccountID,
		MatchID:      args.MatchID,
		Outcome:      args.Outcome,
		Stake:        args.Stake,
		Odds:         odds,
		PotentialWin: args.Stake.Mul(odds).Round(moneyPlaces),
	})
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	if _, recErr := s.ledger.recordTx(ctx, tx, RecordEntryArgs{
		AccountID: args.AccountID,
		Amount:    args.Stake,
		Kind:      domain.EntryKindBet,
		Status:    domain.EntryStatusCompleted,
		Comment:   fmt.Sprintf("Bet on %s (%s)", match.Title(), args.Outcome),
		MatchID:   int64Ptr(match.ID),
		WagerID:   int64Ptr(wager.ID),
	}); recErr != nil {
		return nil, nil, recErr
	}
	return wager, match, nil
}
