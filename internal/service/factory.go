package service

import (
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	LedgerService     *LedgerService
	WagerService      *WagerService
	SettlementService *SettlementService
	ReferralService   *ReferralService
	AccountService    *AccountService
	MatchService      *MatchService
}

type FactoryArgs struct {
	UOW                   uow.UOW
	Limiter               Limiter
	Notifier              Notifier
	MinStake              decimal.Decimal
	WelcomeBalance        decimal.Decimal
	ReferralBonusNew      decimal.Decimal
	ReferralBonusReferrer decimal.Decimal
	Logger                *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	ledger, ledgerErr := NewLedgerService(args.UOW, args.Logger)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerErr.Error())
	}

	referral := NewReferralService(ReferralServiceArgs{
		UOW:           args.UOW,
		Ledger:        ledger,
		Notifier:      args.Notifier,
		BonusNew:      args.ReferralBonusNew,
		BonusReferrer: args.ReferralBonusReferrer,
		Logger:        args.Logger,
	})

	accounts, accountsErr := NewAccountService(AccountServiceArgs{
		UOW:            args.UOW,
		Ledger:         ledger,
		Referral:       referral,
		WelcomeBalance: args.WelcomeBalance,
		Logger:         args.Logger,
	})
	if accountsErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountsErr.Error())
	}

	matches, matchesErr := NewMatchService(args.UOW, args.Logger)
	if matchesErr != nil {
		return nil, fmt.Errorf("service factory: %s", matchesErr.Error())
	}

	return &AppServices{
		LedgerService: ledger,
		WagerService: NewWagerService(WagerServiceArgs{
			UOW:      args.UOW,
			Ledger:   ledger,
			Limiter:  args.Limiter,
			Notifier: args.Notifier,
			MinStake: args.MinStake,
			Logger:   args.Logger,
		}),
		SettlementService: NewSettlementService(args.UOW, ledger, args.Notifier, args.Logger),
		ReferralService:   referral,
		AccountService:    accounts,
		MatchService:      matches,
	}, nil
}
