package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type SettlementService struct {
	uow      uow.UOW
	ledger   *LedgerService
	notifier Notifier
	l        *logrus.Entry
}

func NewSettlementService(u uow.UOW, ledger *LedgerService, n Notifier, l *logrus.Logger) *SettlementService {
	return &SettlementService{
		uow:      u,
		ledger:   ledger,
		notifier: n,
		l:        l.WithFields(logrus.Fields{"component": "service", "module": "settlement"}),
	}
}

// SettlementSummary итог расчета матча.
type SettlementSummary struct {
	MatchID   int64
	Outcome   domain.Outcome
	Won       int
	Lost      int
	Cancelled int
	TotalPaid decimal.Decimal
}

// Finish завершает матч с результатом outcome и рассчитывает все ожидающие ставки на него.
// Проверка "матч уже рассчитан" и выставление результата выполняются атомарно: из двух конкурентных
// вызовов успешен ровно один, второй получает ErrAlreadySettled и ничего не меняет.
//
// Выигрыш выплачивается по коэффициенту, зафиксированному при приеме ставки. При отмене матча
// ставки возвращаются.
func (s *SettlementService) Finish(
	ctx context.Context,
	matchID int64,
	outcome domain.Outcome,
) (*SettlementSummary, error) {
	if !outcome.IsResult() {
		return nil, fmt.Errorf("finish match: outcome `%s`: %w", outcome, domain.ErrInvalidOutcome)
	}

	var (
		summary *SettlementSummary
		events  []domain.Event
	)
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var finishErr error
		summary, events, finishErr = s.finishTx(ctx, tx, matchID, outcome)
		return finishErr
	})
	if err != nil {
		return nil, fmt.Errorf("finish match: %w", err)
	}

	s.l.WithFields(logrus.Fields{
		"match":     summary.MatchID,
		"outcome":   summary.Outcome,
		"won":       summary.Won,
		"lost":      summary.Lost,
		"cancelled": summary.Cancelled,
		"totalPaid": summary.TotalPaid,
	}).Info("match settled")

	return summary, notify(ctx, s.notifier, s.l, "match.settled", events)
}

func (s *SettlementService) finishTx(
	ctx context.Context,
	tx uow.TX,
	matchID int64,
	outcome domain.Outcome,
) (*SettlementSummary, []domain.Event, error) {
	matches, err := getRepo[MatchRepository](tx, repoargs.MatchRepoName)
	if err != nil {
		return nil, nil, err
	}
	match, err := matches.GetForUpdate(ctx, matchID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	if match.Result != nil {
		return nil, nil, fmt.Errorf("match %d: %w", matchID, domain.ErrAlreadySettled)
	}
	claimed, err := matches.ClaimResult(ctx, matchID, outcome)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	if !claimed {
		return nil, nil, fmt.Errorf("match %d: %w", matchID, domain.ErrAlreadySettled)
	}

	wagerRepo, err := getRepo[WagerRepository](tx, repoargs.WagerRepoName)
	if err != nil {
		return nil, nil, err
	}
	// ставки упорядочены по счету, поэтому счета блокируются по возрастанию
	wagers, err := wagerRepo.GetPendingByMatchForUpdate(ctx, matchID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	summary := &SettlementSummary{MatchID: matchID, Outcome: outcome, TotalPaid: decimal.Zero}
	events := make([]domain.Event, 0, len(wagers)+1)

	for i := range wagers {
		w := &wagers[i]
		status, payout, settleErr := s.settleWagerTx(ctx, tx, match, w, outcome)
		if settleErr != nil {
			return nil, nil, settleErr
		}
		switch status {
		case domain.WagerStatusWon:
			summary.Won++
		case domain.WagerStatusCancelled:
			summary.Cancelled++
		default:
			summary.Lost++
		}
		summary.TotalPaid = summary.TotalPaid.Add(payout)
		events = append(events, domain.NewEvent(domain.EventWagerSettled, strconv.FormatInt(w.AccountID, 10),
			map[string]any{
				"wager_id":   w.ID,
				"account_id": w.AccountID,
				"match_id":   matchID,
				"match":      match.Title(),
				"status":     status,
				"payout":     payout.StringFixed(moneyPlaces),
			}))
	}

	events = append(events, domain.NewEvent(domain.EventMatchSettled, strconv.FormatInt(matchID, 10),
		map[string]any{
			"match_id":   matchID,
			"match":      match.Title(),
			"outcome":    outcome,
			"won":        summary.Won,
			"lost":       summary.Lost,
			"cancelled":  summary.Cancelled,
			"total_paid": summary.TotalPaid.StringFixed(moneyPlaces),
		}))
	return summary, events, nil
}

// settleWagerTx переводит ставку в итоговый статус и, если положена выплата, проводит ее через ledger.
func (s *SettlementService) settleWagerTx(
	ctx context.Context,
	tx uow.TX,
	match *domain.Match,
	w *domain.Wager,
	outcome domain.Outcome,
) (domain.WagerStatus, decimal.Decimal, error) {
	var (
		status  domain.WagerStatus
		kind    domain.EntryKind
		payout  = decimal.Zero
		comment string
	)
	switch {
	case outcome == domain.OutcomeCancelled:
		status, kind, payout = domain.WagerStatusCancelled, domain.EntryKindRefund, w.Stake
		comment = fmt.Sprintf("Refund for cancelled match %s", match.Title())
	case w.Outcome == outcome:
		status, kind, payout = domain.WagerStatusWon, domain.EntryKindWin, w.PotentialWin
		comment = fmt.Sprintf("Win on %s", match.Title())
	default:
		status = domain.WagerStatusLost
	}

	wagers, err := getRepo[WagerRepository](tx, repoargs.WagerRepoName)
	if err != nil {
		return "", decimal.Zero, err
	}
	if updErr := wagers.UpdateStatus(ctx, w.ID, status); updErr != nil {
		return "", decimal.Zero, updErr //nolint:wrapcheck
	}
	w.Status = status

	if kind == "" {
		return status, payout, nil
	}
	if _, recErr := s.ledger.recordTx(ctx, tx, RecordEntryArgs{
		AccountID: w.AccountID,
		Amount:    payout,
		Kind:      kind,
		Status:    domain.EntryStatusCompleted,
		Comment:   comment,
		MatchID:   int64Ptr(match.ID),
		WagerID:   int64Ptr(w.ID),
	}); recErr != nil {
		return "", decimal.Zero, recErr
	}
	return status, payout, nil
}
