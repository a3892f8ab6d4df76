package pgrepo

import (
	"context"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `user_id, created_at, updated_at, balance, referral_code, referred_by, email_confirmed`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO accounts (user_id, referral_code, referred_by) VALUES ($1, $2, $3)
		RETURNING `+accountColumns,
		args.UserID, args.ReferralCode, args.ReferredBy,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account for user %d", args.UserID)
	}
	return account, nil
}

func (r *AccountRepository) Get(ctx context.Context, userID int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "getting account %d", userID)
	}
	return account, nil
}

func (r *AccountRepository) GetForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account %d", userID)
	}
	return account, nil
}

func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE referral_code = $1`, code)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by referral code %s", code)
	}
	return account, nil
}

// AddBalance изменяет баланс на delta одной командой UPDATE, без чтения текущего значения.
func (r *AccountRepository) AddBalance(
	ctx context.Context,
	userID int64,
	delta decimal.Decimal,
) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE accounts SET balance = balance + $2, updated_at = now() WHERE user_id = $1
		RETURNING `+accountColumns,
		userID, delta,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "adding %s to balance of account %d", delta, userID)
	}
	return account, nil
}

func (r *AccountRepository) SetEmailConfirmed(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts SET email_confirmed = TRUE, updated_at = now() WHERE user_id = $1`, userID)
	if err != nil {
		return convertErr(err, "confirming email of account %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "confirming email of account %d", userID)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(
		&a.UserID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Balance,
		&a.ReferralCode,
		&a.ReferredBy,
		&a.EmailConfirmed,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
