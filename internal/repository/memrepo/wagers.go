package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
)

type WagerRepository struct {
	base
}

func (r *WagerRepository) Create(_ context.Context, args repoargs.CreateWager) (*domain.Wager, error) {
	var res domain.Wager
	err := r.with(func(st *state) error {
		if _, ok := st.accounts[args.AccountID]; !ok {
			return notFound("CreateWager account `%d`", args.AccountID)
		}
		if _, ok := st.matches[args.MatchID]; !ok {
			return notFound("CreateWager match `%d`", args.MatchID)
		}
		st.wagerSeq++
		now := time.Now()
		res = domain.Wager{
			ID:           st.wagerSeq,
			CreatedAt:    now,
			UpdatedAt:    now,
			AccountID:    args.AccountID,
			MatchID:      args.MatchID,
			Outcome:      args.Outcome,
			Stake:        args.Stake,
			Odds:         args.Odds,
			PotentialWin: args.PotentialWin,
			Status:       domain.WagerStatusPending,
		}
		st.wagers[res.ID] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *WagerRepository) GetPendingByMatchForUpdate(_ context.Context, matchID int64) ([]domain.Wager, error) {
	var res []domain.Wager
	err := r.with(func(st *state) error {
		for _, w := range st.wagers {
			if w.MatchID == matchID && w.Status == domain.WagerStatusPending {
				res = append(res, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b domain.Wager) int {
		return cmp.Or(cmp.Compare(a.AccountID, b.AccountID), cmp.Compare(a.ID, b.ID))
	})
	return res, nil
}

func (r *WagerRepository) UpdateStatus(_ context.Context, id int64, status domain.WagerStatus) error {
	return r.with(func(st *state) error {
		w, ok := st.wagers[id]
		if !ok {
			return notFound("UpdateStatus wager `%d`", id)
		}
		w.Status = status
		w.UpdatedAt = time.Now()
		st.wagers[id] = w
		return nil
	})
}

func (r *WagerRepository) StatsByAccount(_ context.Context, accountID int64) (*repoargs.WagerStats, error) {
	var res repoargs.WagerStats
	err := r.with(func(st *state) error {
		for _, w := range st.wagers {
			if w.AccountID != accountID {
				continue
			}
			res.Total++
			switch w.Status {
			case domain.WagerStatusPending:
				res.Pending++
			case domain.WagerStatusWon:
				res.Won++
			case domain.WagerStatusLost:
				res.Lost++
			case domain.WagerStatusCancelled:
				res.Cancelled++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
