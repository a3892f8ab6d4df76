package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerEntryColumns = `id, token, created_at, updated_at, account_id, amount, kind, status, effect_applied,
	comment, referenced_account_id, match_id, wager_id`

type LedgerEntryRepository struct {
	db uow.DBTX
}

func NewLedgerEntryRepository(db uow.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{db: db}
}

func (r *LedgerEntryRepository) Create(
	ctx context.Context,
	args repoargs.CreateLedgerEntry,
) (*domain.LedgerEntry, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO ledger_entries
			(token, account_id, amount, kind, status, comment, referenced_account_id, match_id, wager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+ledgerEntryColumns,
		args.Token,
		args.AccountID,
		args.Amount,
		string(args.Kind),
		string(args.Status),
		args.Comment,
		args.ReferencedAccountID,
		args.MatchID,
		args.WagerID,
	)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s entry for account %d", args.Kind, args.AccountID)
	}
	return entry, nil
}

func (r *LedgerEntryRepository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.LedgerEntry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE token = $1`, token)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "getting entry %s", token)
	}
	return entry, nil
}

func (r *LedgerEntryRepository) GetByTokenForUpdate(
	ctx context.Context,
	token uuid.UUID,
) (*domain.LedgerEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE token = $1 FOR UPDATE`, token)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "locking entry %s", token)
	}
	return entry, nil
}

// Find возвращает записи по фильтру, новые первыми.
func (r *LedgerEntryRepository) Find(
	ctx context.Context,
	filter repoargs.LedgerEntryFilter,
) ([]domain.LedgerEntry, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.AccountID != nil {
		addCond("account_id", *filter.AccountID)
	}
	if filter.ReferencedAccountID != nil {
		addCond("referenced_account_id", *filter.ReferencedAccountID)
	}
	if filter.Status != nil {
		addCond("status", string(*filter.Status))
	}
	if filter.Kind != nil {
		addCond("kind", string(*filter.Kind))
	}

	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id DESC`
	if filter.Limit > 0 {
		args = append(args, int64(filter.Limit)) //nolint:gosec
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "finding entries")
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		e, scanErr := scanLedgerEntry(row)
		if scanErr != nil {
			return domain.LedgerEntry{}, scanErr
		}
		return *e, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning entries")
	}
	return entries, nil
}

func (r *LedgerEntryRepository) UpdateStatus(ctx context.Context, id int64, status domain.EntryStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ledger_entries SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return convertErr(err, "updating status of entry %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of entry %d", id)
	}
	return nil
}

// ClaimEffect меняет флаг только если он имеет противоположное значение. Из двух конкурентных вызовов
// изменение увидит ровно один.
func (r *LedgerEntryRepository) ClaimEffect(ctx context.Context, id int64, applied bool) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE ledger_entries SET effect_applied = $2, updated_at = now()
		WHERE id = $1 AND effect_applied <> $2`,
		id, applied,
	)
	if err != nil {
		return false, convertErr(err, "claiming effect of entry %d", id)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *LedgerEntryRepository) CompletedTotals(
	ctx context.Context,
	accountID int64,
) ([]repoargs.KindTotal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT kind, SUM(amount) FROM ledger_entries
		WHERE account_id = $1 AND status = 'completed'
		GROUP BY kind ORDER BY kind`,
		accountID,
	)
	if err != nil {
		return nil, convertErr(err, "summing completed entries of account %d", accountID)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.KindTotal, error) {
		var (
			kind  string
			total decimal.Decimal
		)
		scanErr := row.Scan(&kind, &total)
		return repoargs.KindTotal{Kind: domain.EntryKind(kind), Total: total}, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning totals of account %d", accountID)
	}
	return totals, nil
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		e            domain.LedgerEntry
		kind, status string
	)
	if err := row.Scan(
		&e.ID,
		&e.Token,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.AccountID,
		&e.Amount,
		&kind,
		&status,
		&e.EffectApplied,
		&e.Comment,
		&e.ReferencedAccountID,
		&e.MatchID,
		&e.WagerID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	e.Kind = domain.EntryKind(kind)
	e.Status = domain.EntryStatus(status)
	return &e, nil
}
