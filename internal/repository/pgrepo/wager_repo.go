package pgrepo

import (
	"context"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const wagerColumns = `id, created_at, updated_at, account_id, match_id, outcome, stake, odds, potential_win, status`

type WagerRepository struct {
	db uow.DBTX
}

func NewWagerRepository(db uow.DBTX) *WagerRepository {
	return &WagerRepository{db: db}
}

func (r *WagerRepository) Create(ctx context.Context, args repoargs.CreateWager) (*domain.Wager, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO wagers (account_id, match_id, outcome, stake, odds, potential_win)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+wagerColumns,
		args.AccountID,
		args.MatchID,
		string(args.Outcome),
		args.Stake,
		args.Odds,
		args.PotentialWin,
	)
	wager, err := scanWager(row)
	if err != nil {
		return nil, convertErr(err, "creating wager of account %d on match %d", args.AccountID, args.MatchID)
	}
	return wager, nil
}

// GetPendingByMatchForUpdate блокирует ожидающие ставки матча. Порядок по счету совпадает с порядком
// блокировки счетов при расчете.
func (r *WagerRepository) GetPendingByMatchForUpdate(ctx context.Context, matchID int64) ([]domain.Wager, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+wagerColumns+` FROM wagers
		WHERE match_id = $1 AND status = 'pending'
		ORDER BY account_id, id
		FOR UPDATE`,
		matchID,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending wagers of match %d", matchID)
	}
	wagers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Wager, error) {
		w, scanErr := scanWager(row)
		if scanErr != nil {
			return domain.Wager{}, scanErr
		}
		return *w, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning pending wagers of match %d", matchID)
	}
	return wagers, nil
}

func (r *WagerRepository) UpdateStatus(ctx context.Context, id int64, status domain.WagerStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE wagers SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return convertErr(err, "updating status of wager %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of wager %d", id)
	}
	return nil
}

func (r *WagerRepository) StatsByAccount(ctx context.Context, accountID int64) (*repoargs.WagerStats, error) {
	var stats repoargs.WagerStats
	err := r.db.QueryRow(ctx,
		`SELECT
			count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'won'),
			count(*) FILTER (WHERE status = 'lost'),
			count(*) FILTER (WHERE status = 'cancelled')
		FROM wagers WHERE account_id = $1`,
		accountID,
	).Scan(&stats.Total, &stats.Pending, &stats.Won, &stats.Lost, &stats.Cancelled)
	if err != nil {
		return nil, convertErr(err, "wager stats of account %d", accountID)
	}
	return &stats, nil
}

func scanWager(row pgx.Row) (*domain.Wager, error) {
	var (
		w               domain.Wager
		outcome, status string
	)
	if err := row.Scan(
		&w.ID,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.AccountID,
		&w.MatchID,
		&outcome,
		&w.Stake,
		&w.Odds,
		&w.PotentialWin,
		&status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	w.Outcome = domain.Outcome(outcome)
	w.Status = domain.WagerStatus(status)
	return &w, nil
}
