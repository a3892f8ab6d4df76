package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ReferralService ведет отложенные реферальные бонусы. Бонусы создаются в статусе pending при регистрации
// по реферальному коду и зачисляются только после подтверждения email нового пользователя.
type ReferralService struct {
	uow           uow.UOW
	ledger        *LedgerService
	notifier      Notifier
	bonusNew      decimal.Decimal
	bonusReferrer decimal.Decimal
	l             *logrus.Entry
}

type ReferralServiceArgs struct {
	UOW      uow.UOW
	Ledger   *LedgerService
	Notifier Notifier
	// BonusNew бонус приглашенному пользователю.
	BonusNew decimal.Decimal
	// BonusReferrer бонус пригласившему.
	BonusReferrer decimal.Decimal
	Logger        *logrus.Logger
}

func NewReferralService(args ReferralServiceArgs) *ReferralService {
	return &ReferralService{
		uow:           args.UOW,
		ledger:        args.Ledger,
		notifier:      args.Notifier,
		bonusNew:      args.BonusNew,
		bonusReferrer: args.BonusReferrer,
		l:             args.Logger.WithFields(logrus.Fields{"component": "service", "module": "referral"}),
	}
}

// createPendingBonusesTx создает два отложенных бонуса: приглашенному и пригласившему. Бонус пригласившего
// ссылается на приглашенного, по этой ссылке он находится при активации.
func (s *ReferralService) createPendingBonusesTx(ctx context.Context, tx uow.TX, newID, referrerID int64) error {
	bonuses := []RecordEntryArgs{
		{
			AccountID:           newID,
			Amount:              s.bonusNew,
			Kind:                domain.EntryKindReferralBonus,
			Status:              domain.EntryStatusPending,
			Comment:             "Referral registration bonus",
			ReferencedAccountID: int64Ptr(referrerID),
		},
		{
			AccountID:           referrerID,
			Amount:              s.bonusReferrer,
			Kind:                domain.EntryKindReferralBonus,
			Status:              domain.EntryStatusPending,
			Comment:             fmt.Sprintf("Bonus for inviting user %d", newID),
			ReferencedAccountID: int64Ptr(newID),
		},
	}
	for _, b := range bonuses {
		if !b.Amount.IsPositive() {
			continue
		}
		if _, err := s.ledger.recordTx(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

// Activate срабатывает при подтверждении email счета accountID: отмечает подтверждение и зачисляет бонус счета
// за регистрацию по приглашению и бонус пригласившего, выданный за этот счет. Бонусы за приглашенных самим
// счетом ждут их подтверждения. Повторный вызов ничего не зачисляет.
func (s *ReferralService) Activate(ctx context.Context, accountID int64) error {
	var activated []domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		account, lockErr := s.lockParticipantsTx(ctx, tx, accountID)
		if lockErr != nil {
			return lockErr
		}
		accounts, repoErr := getRepo[AccountRepository](tx, repoargs.AccountRepoName)
		if repoErr != nil {
			return repoErr
		}
		if confirmErr := accounts.SetEmailConfirmed(ctx, accountID); confirmErr != nil {
			return confirmErr //nolint:wrapcheck
		}

		var transErr error
		activated, transErr = s.transitionPendingTx(ctx, tx, account, domain.EntryStatusCompleted)
		return transErr
	})
	if err != nil {
		return fmt.Errorf("activate bonuses: %w", err)
	}

	s.l.WithFields(logrus.Fields{"account": accountID, "activated": len(activated)}).Info("referral bonuses activated")

	events := make([]domain.Event, 0, len(activated))
	for _, e := range activated {
		events = append(events, domain.NewEvent(domain.EventBonusActivated, strconv.FormatInt(e.AccountID, 10),
			map[string]any{
				"token":      e.Token.String(),
				"account_id": e.AccountID,
				"amount":     e.Amount.StringFixed(moneyPlaces),
			}))
	}
	return notify(ctx, s.notifier, s.l, "bonus.activated", events)
}

// VoidPendingBonuses аннулирует (переводит в failed) отложенные бонусы, связанные с неподтвержденным
// счетом accountID. Возвращает количество аннулированных записей.
func (s *ReferralService) VoidPendingBonuses(ctx context.Context, accountID int64) (int, error) {
	var voided []domain.LedgerEntry
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		account, lockErr := s.lockParticipantsTx(ctx, tx, accountID)
		if lockErr != nil {
			return lockErr
		}
		var transErr error
		voided, transErr = s.transitionPendingTx(ctx, tx, account, domain.EntryStatusFailed)
		return transErr
	})
	if err != nil {
		return 0, fmt.Errorf("void bonuses: %w", err)
	}
	s.l.WithFields(logrus.Fields{"account": accountID, "voided": len(voided)}).Info("referral bonuses voided")
	return len(voided), nil
}

// lockParticipantsTx блокирует счет и его пригласившего в порядке возрастания идентификаторов.
func (s *ReferralService) lockParticipantsTx(ctx context.Context, tx uow.TX, accountID int64) (*domain.Account, error) {
	accounts, err := getRepo[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", accountID, domain.ErrUnknownAccount)
		}
		return nil, err //nolint:wrapcheck
	}
	ids := []int64{accountID}
	if account.ReferredBy != nil {
		ids = append(ids, *account.ReferredBy)
	}
	slices.Sort(ids)

	for _, id := range ids {
		locked, lockErr := s.ledger.lockAccountTx(ctx, tx, id)
		if lockErr != nil {
			return nil, lockErr
		}
		if id == accountID {
			account = locked
		}
	}
	return account, nil
}

// transitionPendingTx переводит в status отложенные бонусы, выданные за регистрацию счета по приглашению:
// бонус самого счета (ссылается на пригласившего) и бонус пригласившего (ссылается на счет).
// Бонусы, которые счет получил как пригласивший, зависят от подтверждения приглашенных и здесь не трогаются.
func (s *ReferralService) transitionPendingTx(
	ctx context.Context,
	tx uow.TX,
	account *domain.Account,
	status domain.EntryStatus,
) ([]domain.LedgerEntry, error) {
	if account.ReferredBy == nil {
		return nil, nil
	}
	entries, err := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
	if err != nil {
		return nil, err
	}
	pending := domain.EntryStatusPending
	kind := domain.EntryKindReferralBonus

	filters := []repoargs.LedgerEntryFilter{
		{
			AccountID:           int64Ptr(account.UserID),
			ReferencedAccountID: account.ReferredBy,
			Status:              &pending,
			Kind:                &kind,
		},
		{
			AccountID:           account.ReferredBy,
			ReferencedAccountID: int64Ptr(account.UserID),
			Status:              &pending,
			Kind:                &kind,
		},
	}
	var bonuses []domain.LedgerEntry
	for _, f := range filters {
		found, findErr := entries.Find(ctx, f)
		if findErr != nil {
			return nil, findErr //nolint:wrapcheck
		}
		bonuses = append(bonuses, found...)
	}

	slices.SortFunc(bonuses, func(a, b domain.LedgerEntry) int {
		return cmp.Or(cmp.Compare(a.AccountID, b.AccountID), cmp.Compare(a.ID, b.ID))
	})
	for i := range bonuses {
		if transErr := s.ledger.transitionTx(ctx, tx, &bonuses[i], status); transErr != nil {
			return nil, transErr
		}
	}
	return bonuses, nil
}
