package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LedgerService единственный, кто меняет баланс счетов. Влияние каждой записи на баланс применяется
// ровно один раз: флаг effect_applied записи переключается атомарно вместе с изменением баланса,
// под блокировкой счета.
type LedgerService struct {
	uow       uow.UOW
	entryRepo LedgerEntryRepository
	l         *logrus.Entry
}

func NewLedgerService(u uow.UOW, l *logrus.Logger) (*LedgerService, error) {
	entryRepo, err := uow.GetRepositoryAs[LedgerEntryRepository](u, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:       u,
		entryRepo: entryRepo,
		l:         l.WithFields(logrus.Fields{"component": "service", "module": "ledger"}),
	}, nil
}

type RecordEntryArgs struct {
	AccountID           int64
	Amount              decimal.Decimal
	Kind                domain.EntryKind
	Status              domain.EntryStatus
	Comment             string
	ReferencedAccountID *int64
	MatchID             *int64
	WagerID             *int64
}

// Get возвращает запись по токену.
func (s *LedgerService) Get(ctx context.Context, token uuid.UUID) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// Record создает запись в статусе pending или completed. Завершенная запись сразу применяется к балансу.
func (s *LedgerService) Record(ctx context.Context, args RecordEntryArgs) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var recErr error
		entry, recErr = s.recordTx(ctx, tx, args)
		return recErr
	})
	if err != nil {
		return nil, fmt.Errorf("record entry: %w", err)
	}
	return entry, nil
}

// Apply применяет влияние завершенной записи к балансу, если оно еще не применено. Для остальных записей
// ничего не делает.
func (s *LedgerService) Apply(ctx context.Context, token uuid.UUID) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var lockErr error
		entry, lockErr = s.lockEntryTx(ctx, tx, token)
		if lockErr != nil {
			return lockErr
		}
		return s.applyTx(ctx, tx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("apply entry: %w", err)
	}
	return entry, nil
}

// Transition переводит запись в статус status. Повторный вызов с тем же статусом ничего не меняет.
// Допустимы только переходы из pending. Откатить завершенную запись можно лишь через Correct.
func (s *LedgerService) Transition(
	ctx context.Context,
	token uuid.UUID,
	status domain.EntryStatus,
) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var lockErr error
		entry, lockErr = s.lockEntryTx(ctx, tx, token)
		if lockErr != nil {
			return lockErr
		}
		return s.transitionTx(ctx, tx, entry, status)
	})
	if err != nil {
		return nil, fmt.Errorf("transition entry: %w", err)
	}
	return entry, nil
}

// Correct исправляет ошибочно проведенное пополнение или списание: снимает его влияние с баланса и
// переводит запись в status, допустим только failed. Записи ставок, выигрышей, возвратов и бонусов
// не корректируются.
func (s *LedgerService) Correct(
	ctx context.Context,
	token uuid.UUID,
	status domain.EntryStatus,
) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var lockErr error
		entry, lockErr = s.lockEntryTx(ctx, tx, token)
		if lockErr != nil {
			return lockErr
		}
		return s.correctTx(ctx, tx, entry, status)
	})
	if err != nil {
		return nil, fmt.Errorf("correct entry: %w", err)
	}
	s.l.WithFields(logrus.Fields{
		"token":   entry.Token,
		"account": entry.AccountID,
		"kind":    entry.Kind,
		"amount":  entry.Amount,
		"status":  entry.Status,
	}).Info("entry corrected")
	return entry, nil
}

func (s *LedgerService) lockEntryTx(ctx context.Context, tx uow.TX, token uuid.UUID) (*domain.LedgerEntry, error) {
	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return nil, err
	}
	return entries.GetByTokenForUpdate(ctx, token) //nolint:wrapcheck
}

// recordTx создает запись в транзакции tx. Все проверки выполняются до каких-либо изменений.
func (s *LedgerService) recordTx(ctx context.Context, tx uow.TX, args RecordEntryArgs) (*domain.LedgerEntry, error) {
	if _, err := domain.SignedAmount(args.Kind, args.Amount); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !args.Amount.IsPositive() || !domain.IsMoney(args.Amount) {
		return nil, fmt.Errorf("amount %s: %w", args.Amount, domain.ErrInvalidAmount)
	}
	if args.Status != domain.EntryStatusPending && args.Status != domain.EntryStatusCompleted {
		return nil, fmt.Errorf("create entry in status `%s`: %w", args.Status, domain.ErrInvalidTransition)
	}

	if _, err := s.lockAccountTx(ctx, tx, args.AccountID); err != nil {
		return nil, err
	}

	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return nil, err
	}
	entry, err := entries.Create(ctx, repoargs.CreateLedgerEntry{
		Token:               uuid.New(),
		AccountID:           args.AccountID,
		Amount:              args.Amount,
		Kind:                args.Kind,
		Status:              args.Status,
		Comment:             args.Comment,
		ReferencedAccountID: args.ReferencedAccountID,
		MatchID:             args.MatchID,
		WagerID:             args.WagerID,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if applyErr := s.applyTx(ctx, tx, entry); applyErr != nil {
		return nil, applyErr
	}
	return entry, nil
}

// applyTx применяет влияние записи к балансу в транзакции tx. Ничего не делает, если запись не завершена
// или ее влияние уже учтено.
func (s *LedgerService) applyTx(ctx context.Context, tx uow.TX, entry *domain.LedgerEntry) error {
	if entry.Status != domain.EntryStatusCompleted || entry.EffectApplied {
		return nil
	}
	delta, err := domain.SignedAmount(entry.Kind, entry.Amount)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return s.moveTx(ctx, tx, entry, delta, true)
}

// reverseTx снимает ранее примененное влияние записи с баланса.
func (s *LedgerService) reverseTx(ctx context.Context, tx uow.TX, entry *domain.LedgerEntry) error {
	if !entry.EffectApplied {
		return nil
	}
	delta, err := domain.SignedAmount(entry.Kind, entry.Amount)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return s.moveTx(ctx, tx, entry, delta.Neg(), false)
}

// moveTx под блокировкой счета переключает флаг effect_applied в applied и, если переключение состоялось,
// изменяет баланс на delta.
func (s *LedgerService) moveTx(
	ctx context.Context,
	tx uow.TX,
	entry *domain.LedgerEntry,
	delta decimal.Decimal,
	applied bool,
) error {
	if _, err := s.lockAccountTx(ctx, tx, entry.AccountID); err != nil {
		return err
	}

	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return err
	}
	claimed, err := entries.ClaimEffect(ctx, entry.ID, applied)
	if err != nil {
		return err //nolint:wrapcheck
	}
	entry.EffectApplied = applied
	if !claimed {
		return nil
	}

	accounts, err := getRepo[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return err
	}
	if _, addErr := accounts.AddBalance(ctx, entry.AccountID, delta); addErr != nil {
		return addErr //nolint:wrapcheck
	}
	return nil
}

func (s *LedgerService) transitionTx(
	ctx context.Context,
	tx uow.TX,
	entry *domain.LedgerEntry,
	status domain.EntryStatus,
) error {
	if !status.IsValid() {
		return fmt.Errorf("status `%s`: %w", status, domain.ErrInvalidTransition)
	}
	if entry.Status == status {
		return s.applyTx(ctx, tx, entry)
	}
	if entry.Status != domain.EntryStatusPending {
		return fmt.Errorf("%s -> %s: %w", entry.Status, status, domain.ErrInvalidTransition)
	}

	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return err
	}
	if updErr := entries.UpdateStatus(ctx, entry.ID, status); updErr != nil {
		return updErr //nolint:wrapcheck
	}
	entry.Status = status
	return s.applyTx(ctx, tx, entry)
}

func (s *LedgerService) correctTx(
	ctx context.Context,
	tx uow.TX,
	entry *domain.LedgerEntry,
	status domain.EntryStatus,
) error {
	if !entry.Kind.IsCorrectable() {
		return fmt.Errorf("kind `%s`: %w", entry.Kind, domain.ErrCorrectionNotAllowed)
	}
	if entry.Status != domain.EntryStatusCompleted || status != domain.EntryStatusFailed {
		return fmt.Errorf("correct %s -> %s: %w", entry.Status, status, domain.ErrInvalidTransition)
	}

	if err := s.reverseTx(ctx, tx, entry); err != nil {
		return err
	}
	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return err
	}
	if updErr := entries.UpdateStatus(ctx, entry.ID, status); updErr != nil {
		return updErr //nolint:wrapcheck
	}
	entry.Status = status
	return nil
}

// lockAccountTx блокирует счет до конца транзакции. Отсутствующий счет дает ErrUnknownAccount.
func (s *LedgerService) lockAccountTx(ctx context.Context, tx uow.TX, accountID int64) (*domain.Account, error) {
	accounts, err := getRepo[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	account, err := accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", accountID, domain.ErrUnknownAccount)
		}
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}
