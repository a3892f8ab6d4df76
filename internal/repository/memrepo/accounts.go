package memrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	base
}

func (r *AccountRepository) Create(_ context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	var res domain.Account
	err := r.with(func(st *state) error {
		if _, ok := st.accounts[args.UserID]; ok {
			return duplicate("CreateAccount userID `%d`", args.UserID)
		}
		for _, a := range st.accounts {
			if a.ReferralCode == args.ReferralCode {
				return duplicate("CreateAccount referral code `%s`", args.ReferralCode)
			}
		}
		now := time.Now()
		res = domain.Account{
			UserID:       args.UserID,
			CreatedAt:    now,
			UpdatedAt:    now,
			Balance:      decimal.Zero,
			ReferralCode: args.ReferralCode,
			ReferredBy:   args.ReferredBy,
		}
		st.accounts[args.UserID] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *AccountRepository) Get(_ context.Context, userID int64) (*domain.Account, error) {
	var res domain.Account
	err := r.with(func(st *state) error {
		a, ok := st.accounts[userID]
		if !ok {
			return notFound("GetAccount userID `%d`", userID)
		}
		res = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetForUpdate совпадает с Get: транзакции хранилища и так исполняются последовательно.
func (r *AccountRepository) GetForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	return r.Get(ctx, userID)
}

func (r *AccountRepository) FindByReferralCode(_ context.Context, code string) (*domain.Account, error) {
	var res *domain.Account
	err := r.with(func(st *state) error {
		for _, a := range st.accounts {
			if a.ReferralCode == code {
				res = &a
				return nil
			}
		}
		return notFound("FindByReferralCode `%s`", code)
	})
	return res, err
}

func (r *AccountRepository) AddBalance(
	_ context.Context,
	userID int64,
	delta decimal.Decimal,
) (*domain.Account, error) {
	var res domain.Account
	err := r.with(func(st *state) error {
		a, ok := st.accounts[userID]
		if !ok {
			return notFound("AddBalance userID `%d`", userID)
		}
		a.Balance = a.Balance.Add(delta)
		a.UpdatedAt = time.Now()
		st.accounts[userID] = a
		res = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *AccountRepository) SetEmailConfirmed(_ context.Context, userID int64) error {
	return r.with(func(st *state) error {
		a, ok := st.accounts[userID]
		if !ok {
			return notFound("SetEmailConfirmed userID `%d`", userID)
		}
		a.EmailConfirmed = true
		a.UpdatedAt = time.Now()
		st.accounts[userID] = a
		return nil
	})
}
