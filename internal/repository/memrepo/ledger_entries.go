package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LedgerEntryRepository struct {
	base
}

func (r *LedgerEntryRepository) Create(
	_ context.Context,
	args repoargs.CreateLedgerEntry,
) (*domain.LedgerEntry, error) {
	var res domain.LedgerEntry
	err := r.with(func(st *state) error {
		if _, ok := st.entryByToken[args.Token]; ok {
			return duplicate("CreateLedgerEntry token `%s`", args.Token)
		}
		if _, ok := st.accounts[args.AccountID]; !ok {
			return notFound("CreateLedgerEntry account `%d`", args.AccountID)
		}
		st.entrySeq++
		now := time.Now()
		res = domain.LedgerEntry{
			ID:                  st.entrySeq,
			Token:               args.Token,
			CreatedAt:           now,
			UpdatedAt:           now,
			AccountID:           args.AccountID,
			Amount:              args.Amount,
			Kind:                args.Kind,
			Status:              args.Status,
			Comment:             args.Comment,
			ReferencedAccountID: args.ReferencedAccountID,
			MatchID:             args.MatchID,
			WagerID:             args.WagerID,
		}
		st.entries[res.ID] = res
		st.entryByToken[res.Token] = res.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *LedgerEntryRepository) GetByToken(_ context.Context, token uuid.UUID) (*domain.LedgerEntry, error) {
	var res domain.LedgerEntry
	err := r.with(func(st *state) error {
		id, ok := st.entryByToken[token]
		if !ok {
			return notFound("GetByToken `%s`", token)
		}
		res = st.entries[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *LedgerEntryRepository) GetByTokenForUpdate(
	ctx context.Context,
	token uuid.UUID,
) (*domain.LedgerEntry, error) {
	return r.GetByToken(ctx, token)
}

// Find возвращает записи по фильтру, новые первыми.
func (r *LedgerEntryRepository) Find(
	_ context.Context,
	filter repoargs.LedgerEntryFilter,
) ([]domain.LedgerEntry, error) {
	var res []domain.LedgerEntry
	err := r.with(func(st *state) error {
		for _, e := range st.entries {
			if matchEntry(e, filter) {
				res = append(res, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b domain.LedgerEntry) int {
		return cmp.Compare(b.ID, a.ID)
	})
	if filter.Limit > 0 && uint(len(res)) > filter.Limit {
		res = res[:filter.Limit]
	}
	return res, nil
}

func matchEntry(e domain.LedgerEntry, f repoargs.LedgerEntryFilter) bool {
	if f.AccountID != nil && e.AccountID != *f.AccountID {
		return false
	}
	if f.ReferencedAccountID != nil &&
		(e.ReferencedAccountID == nil || *e.ReferencedAccountID != *f.ReferencedAccountID) {
		return false
	}
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	if f.Kind != nil && e.Kind != *f.Kind {
		return false
	}
	return true
}

func (r *LedgerEntryRepository) UpdateStatus(_ context.Context, id int64, status domain.EntryStatus) error {
	return r.with(func(st *state) error {
		e, ok := st.entries[id]
		if !ok {
			return notFound("UpdateStatus entry `%d`", id)
		}
		e.Status = status
		e.UpdatedAt = time.Now()
		st.entries[id] = e
		return nil
	})
}

func (r *LedgerEntryRepository) ClaimEffect(_ context.Context, id int64, applied bool) (bool, error) {
	var claimed bool
	err := r.with(func(st *state) error {
		e, ok := st.entries[id]
		if !ok {
			return notFound("ClaimEffect entry `%d`", id)
		}
		if e.EffectApplied == applied {
			return nil
		}
		e.EffectApplied = applied
		e.UpdatedAt = time.Now()
		st.entries[id] = e
		claimed = true
		return nil
	})
	return claimed, err
}

func (r *LedgerEntryRepository) CompletedTotals(_ context.Context, accountID int64) ([]repoargs.KindTotal, error) {
	totals := make(map[domain.EntryKind]decimal.Decimal)
	err := r.with(func(st *state) error {
		for _, e := range st.entries {
			if e.AccountID != accountID || e.Status != domain.EntryStatusCompleted {
				continue
			}
			totals[e.Kind] = totals[e.Kind].Add(e.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := make([]repoargs.KindTotal, 0, len(totals))
	for kind, total := range totals {
		res = append(res, repoargs.KindTotal{Kind: kind, Total: total})
	}
	slices.SortFunc(res, func(a, b repoargs.KindTotal) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return res, nil
}
