package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const matchColumns = `id, created_at, updated_at, external_id, sport_key, home_team, away_team, commence_time,
	status, result`

type MatchRepository struct {
	db uow.DBTX
}

func NewMatchRepository(db uow.DBTX) *MatchRepository {
	return &MatchRepository{db: db}
}

// Upsert создает матч или обновляет описание существующего с тем же external_id.
// Статус и результат существующего матча не меняются.
func (r *MatchRepository) Upsert(ctx context.Context, args repoargs.UpsertMatch) (*domain.Match, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO matches (external_id, sport_key, home_team, away_team, commence_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_id) DO UPDATE SET
			sport_key = EXCLUDED.sport_key,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			commence_time = EXCLUDED.commence_time,
			updated_at = now()
		RETURNING `+matchColumns,
		args.ExternalID, args.SportKey, args.HomeTeam, args.AwayTeam, args.CommenceTime,
	)
	match, err := scanMatch(row)
	if err != nil {
		return nil, convertErr(err, "upserting match %s", args.ExternalID)
	}
	return match, nil
}

func (r *MatchRepository) Get(ctx context.Context, id int64) (*domain.Match, error) {
	return r.get(ctx, id, "")
}

// GetForShare блокирует матч от расчета, не мешая параллельным ставкам на него.
func (r *MatchRepository) GetForShare(ctx context.Context, id int64) (*domain.Match, error) {
	return r.get(ctx, id, " FOR SHARE")
}

func (r *MatchRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Match, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *MatchRepository) get(ctx context.Context, id int64, lock string) (*domain.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`+lock, id)
	match, err := scanMatch(row)
	if err != nil {
		return nil, convertErr(err, "getting match %d", id)
	}
	return match, nil
}

func (r *MatchRepository) ClaimResult(ctx context.Context, id int64, outcome domain.Outcome) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE matches SET status = 'completed', result = $2, updated_at = now()
		WHERE id = $1 AND result IS NULL`,
		id, string(outcome),
	)
	if err != nil {
		return false, convertErr(err, "claiming result of match %d", id)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *MatchRepository) MarkStartedLive(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE matches SET status = 'live', updated_at = now()
		WHERE status = 'upcoming' AND commence_time <= $1`,
		now,
	)
	if err != nil {
		return 0, convertErr(err, "marking started matches live")
	}
	return tag.RowsAffected(), nil
}

// UpsertOdds сохраняет коэффициенты одним батчем.
func (r *MatchRepository) UpsertOdds(ctx context.Context, odds []repoargs.UpsertOdds) error {
	if len(odds) == 0 {
		return nil
	}
	batch := new(pgx.Batch)
	for _, o := range odds {
		lastUpdate := o.LastUpdate
		if lastUpdate.IsZero() {
			lastUpdate = time.Now()
		}
		batch.Queue(
			`INSERT INTO odds (match_id, bookmaker, outcome, price, last_update)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (match_id, bookmaker, outcome) DO UPDATE SET
				price = EXCLUDED.price,
				last_update = EXCLUDED.last_update`,
			o.MatchID, o.Bookmaker, string(o.Outcome), o.Price, lastUpdate,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for _, o := range odds {
		if _, err := br.Exec(); err != nil {
			return convertErr(err, "upserting odds of match %d bookmaker %s", o.MatchID, o.Bookmaker)
		}
	}
	return nil
}

func (r *MatchRepository) BestPrice(
	ctx context.Context,
	matchID int64,
	outcome domain.Outcome,
) (decimal.Decimal, error) {
	var best decimal.NullDecimal
	err := r.db.QueryRow(ctx,
		`SELECT MAX(price) FROM odds WHERE match_id = $1 AND outcome = $2`,
		matchID, string(outcome),
	).Scan(&best)
	if err != nil {
		return decimal.Zero, convertErr(err, "best price of match %d outcome %s", matchID, outcome)
	}
	if !best.Valid {
		return decimal.Zero, convertErr(pgx.ErrNoRows, "best price of match %d outcome %s", matchID, outcome)
	}
	return best.Decimal, nil
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var (
		m      domain.Match
		status string
		result *string
	)
	if err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.ExternalID,
		&m.SportKey,
		&m.HomeTeam,
		&m.AwayTeam,
		&m.CommenceTime,
		&status,
		&result,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Status = domain.MatchStatus(status)
	if result != nil {
		outcome := domain.Outcome(*result)
		m.Result = &outcome
	}
	return &m, nil
}
