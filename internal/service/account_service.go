package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const referralCodeAttempts = 5

type AccountService struct {
	uow            uow.UOW
	ledger         *LedgerService
	referral       *ReferralService
	accountRepo    AccountRepository
	entryRepo      LedgerEntryRepository
	wagerRepo      WagerRepository
	welcomeBalance decimal.Decimal
	l              *logrus.Entry
}

type AccountServiceArgs struct {
	UOW            uow.UOW
	Ledger         *LedgerService
	Referral       *ReferralService
	WelcomeBalance decimal.Decimal
	Logger         *logrus.Logger
}

func NewAccountService(args AccountServiceArgs) (*AccountService, error) {
	accountRepo, err := uow.GetRepositoryAs[AccountRepository](args.UOW, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	entryRepo, err := uow.GetRepositoryAs[LedgerEntryRepository](
		args.UOW,
		uow.RepositoryName(repoargs.LedgerEntryRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	wagerRepo, err := uow.GetRepositoryAs[WagerRepository](args.UOW, uow.RepositoryName(repoargs.WagerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AccountService{
		uow:            args.UOW,
		ledger:         args.Ledger,
		referral:       args.Referral,
		accountRepo:    accountRepo,
		entryRepo:      entryRepo,
		wagerRepo:      wagerRepo,
		welcomeBalance: args.WelcomeBalance,
		l:              args.Logger.WithFields(logrus.Fields{"component": "service", "module": "account"}),
	}, nil
}

type OpenAccountArgs struct {
	UserID       int64
	ReferralCode string
}

// Open открывает счет пользователю. Стартовый баланс зачисляется завершенной записью вида deposit.
// Если указан реферальный код, создаются отложенные бонусы приглашенному и пригласившему.
// Ошибки: ErrInvalidReferralCode, ErrDuplicateKey (счет уже открыт).
func (s *AccountService) Open(ctx context.Context, args OpenAccountArgs) (*domain.Account, error) {
	var account *domain.Account
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		var openErr error
		account, openErr = s.openTx(ctx, tx, args)
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	s.l.WithFields(logrus.Fields{
		"account":    account.UserID,
		"referredBy": account.ReferredBy,
	}).Info("account opened")
	return account, nil
}

func (s *AccountService) openTx(ctx context.Context, tx uow.TX, args OpenAccountArgs) (*domain.Account, error) {
	accounts, err := getRepo[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}

	var referrer *domain.Account
	if args.ReferralCode != "" {
		referrer, err = accounts.FindByReferralCode(ctx, args.ReferralCode)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return nil, fmt.Errorf("code `%s`: %w", args.ReferralCode, domain.ErrInvalidReferralCode)
			}
			return nil, err //nolint:wrapcheck
		}
		// пригласивший блокируется раньше, чем появится строка нового счета
		if referrer, err = s.ledger.lockAccountTx(ctx, tx, referrer.UserID); err != nil {
			return nil, err
		}
	}

	code, err := s.freeReferralCode(ctx, accounts)
	if err != nil {
		return nil, err
	}
	create := repoargs.CreateAccount{UserID: args.UserID, ReferralCode: code}
	if referrer != nil {
		create.ReferredBy = int64Ptr(referrer.UserID)
	}
	if _, createErr := accounts.Create(ctx, create); createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}

	if s.welcomeBalance.IsPositive() {
		if _, recErr := s.ledger.recordTx(ctx, tx, RecordEntryArgs{
			AccountID: args.UserID,
			Amount:    s.welcomeBalance,
			Kind:      domain.EntryKindDeposit,
			Status:    domain.EntryStatusCompleted,
			Comment:   "Welcome balance",
		}); recErr != nil {
			return nil, recErr
		}
	}

	if referrer != nil {
		if bonusErr := s.referral.createPendingBonusesTx(ctx, tx, args.UserID, referrer.UserID); bonusErr != nil {
			return nil, bonusErr
		}
	}

	return accounts.Get(ctx, args.UserID) //nolint:wrapcheck
}

// freeReferralCode подбирает еще не занятый реферальный код.
func (s *AccountService) freeReferralCode(ctx context.Context, accounts AccountRepository) (string, error) {
	for range referralCodeAttempts {
		code := generateReferralCode()
		_, err := accounts.FindByReferralCode(ctx, code)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err //nolint:wrapcheck
		}
	}
	return "", fmt.Errorf("referral code: %w", domain.ErrDuplicateKey)
}

// Get возвращает счет пользователя или ErrUnknownAccount.
func (s *AccountService) Get(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", userID, domain.ErrUnknownAccount)
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *AccountService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	account, err := s.Get(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

type EntriesFilter struct {
	Status *domain.EntryStatus
	Kind   *domain.EntryKind
	Limit  uint
}

// Entries возвращает записи счета, новые первыми.
func (s *AccountService) Entries(
	ctx context.Context,
	userID int64,
	filter EntriesFilter,
) ([]domain.LedgerEntry, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.Find(ctx, repoargs.LedgerEntryFilter{
		AccountID: int64Ptr(userID),
		Status:    filter.Status,
		Kind:      filter.Kind,
		Limit:     filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("entries: %w", err)
	}
	return entries, nil
}

type BettingStats struct {
	Total     int64
	Pending   int64
	Won       int64
	Lost      int64
	Cancelled int64
	// WinRate доля выигранных среди выигранных и проигранных, в процентах.
	WinRate decimal.Decimal
}

func (s *AccountService) Stats(ctx context.Context, userID int64) (*BettingStats, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	st, err := s.wagerRepo.StatsByAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	stats := &BettingStats{
		Total:     st.Total,
		Pending:   st.Pending,
		Won:       st.Won,
		Lost:      st.Lost,
		Cancelled: st.Cancelled,
		WinRate:   decimal.Zero,
	}
	if decided := st.Won + st.Lost; decided > 0 {
		stats.WinRate = decimal.NewFromInt(st.Won).
			Mul(decimal.NewFromInt(100)). //nolint:mnd
			DivRound(decimal.NewFromInt(decided), moneyPlaces)
	}
	return stats, nil
}

// Reconciliation сверка баланса с журналом.
type Reconciliation struct {
	AccountID int64
	Balance   decimal.Decimal
	// Expected сумма завершенных записей с учетом знака.
	Expected decimal.Decimal
	// Drift расхождение Balance - Expected. Для согласованного счета равно нулю.
	Drift decimal.Decimal
}

// Reconcile сверяет баланс счета с суммой его завершенных записей. Чтение выполняется под блокировкой
// счета, поэтому параллельные проводки не дают ложного расхождения.
func (s *AccountService) Reconcile(ctx context.Context, userID int64) (*Reconciliation, error) {
	var rec *Reconciliation
	err := doWithRetry(ctx, s.uow, func(ctx context.Context, tx uow.TX) error {
		account, lockErr := s.ledger.lockAccountTx(ctx, tx, userID)
		if lockErr != nil {
			return lockErr
		}
		entries, repoErr := getRepo[LedgerEntryRepository](tx, repoargs.LedgerEntryRepoName)
		if repoErr != nil {
			return repoErr
		}
		totals, totalsErr := entries.CompletedTotals(ctx, userID)
		if totalsErr != nil {
			return totalsErr //nolint:wrapcheck
		}
		expected := decimal.Zero
		for _, t := range totals {
			signed, signErr := domain.SignedAmount(t.Kind, t.Total)
			if signErr != nil {
				return signErr //nolint:wrapcheck
			}
			expected = expected.Add(signed)
		}
		rec = &Reconciliation{
			AccountID: userID,
			Balance:   account.Balance,
			Expected:  expected,
			Drift:     account.Balance.Sub(expected),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	if !rec.Drift.IsZero() {
		s.l.WithFields(logrus.Fields{
			"account":  userID,
			"balance":  rec.Balance,
			"expected": rec.Expected,
		}).Error("ledger drift detected")
	}
	return rec, nil
}
