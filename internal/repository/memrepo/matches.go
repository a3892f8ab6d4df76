package memrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type MatchRepository struct {
	base
}

// Upsert создает матч или обновляет описание существующего с тем же внешним идентификатором.
// Статус и результат существующего матча не меняются.
func (r *MatchRepository) Upsert(_ context.Context, args repoargs.UpsertMatch) (*domain.Match, error) {
	var res domain.Match
	err := r.with(func(st *state) error {
		now := time.Now()
		if id, ok := st.matchByExtID[args.ExternalID]; ok {
			m := st.matches[id]
			m.SportKey = args.SportKey
			m.HomeTeam = args.HomeTeam
			m.AwayTeam = args.AwayTeam
			m.CommenceTime = args.CommenceTime
			m.UpdatedAt = now
			st.matches[id] = m
			res = m
			return nil
		}
		st.matchSeq++
		res = domain.Match{
			ID:           st.matchSeq,
			CreatedAt:    now,
			UpdatedAt:    now,
			ExternalID:   args.ExternalID,
			SportKey:     args.SportKey,
			HomeTeam:     args.HomeTeam,
			AwayTeam:     args.AwayTeam,
			CommenceTime: args.CommenceTime,
			Status:       domain.MatchStatusUpcoming,
		}
		st.matches[res.ID] = res
		st.matchByExtID[res.ExternalID] = res.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *MatchRepository) Get(_ context.Context, id int64) (*domain.Match, error) {
	var res domain.Match
	err := r.with(func(st *state) error {
		m, ok := st.matches[id]
		if !ok {
			return notFound("GetMatch `%d`", id)
		}
		res = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *MatchRepository) GetForShare(ctx context.Context, id int64) (*domain.Match, error) {
	return r.Get(ctx, id)
}

func (r *MatchRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Match, error) {
	return r.Get(ctx, id)
}

func (r *MatchRepository) ClaimResult(_ context.Context, id int64, outcome domain.Outcome) (bool, error) {
	var claimed bool
	err := r.with(func(st *state) error {
		m, ok := st.matches[id]
		if !ok {
			return notFound("ClaimResult match `%d`", id)
		}
		if m.Result != nil {
			return nil
		}
		result := outcome
		m.Result = &result
		m.Status = domain.MatchStatusCompleted
		m.UpdatedAt = time.Now()
		st.matches[id] = m
		claimed = true
		return nil
	})
	return claimed, err
}

func (r *MatchRepository) MarkStartedLive(_ context.Context, now time.Time) (int64, error) {
	var affected int64
	err := r.with(func(st *state) error {
		for id, m := range st.matches {
			if m.Status != domain.MatchStatusUpcoming || m.CommenceTime.After(now) {
				continue
			}
			m.Status = domain.MatchStatusLive
			m.UpdatedAt = time.Now()
			st.matches[id] = m
			affected++
		}
		return nil
	})
	return affected, err
}

func (r *MatchRepository) UpsertOdds(_ context.Context, odds []repoargs.UpsertOdds) error {
	return r.with(func(st *state) error {
		for _, o := range odds {
			if _, ok := st.matches[o.MatchID]; !ok {
				return notFound("UpsertOdds match `%d`", o.MatchID)
			}
		}
		for _, o := range odds {
			key := oddsKey{matchID: o.MatchID, bookmaker: o.Bookmaker, outcome: o.Outcome}
			st.odds[key] = domain.Odds{
				MatchID:    o.MatchID,
				Bookmaker:  o.Bookmaker,
				Outcome:    o.Outcome,
				Price:      o.Price,
				LastUpdate: o.LastUpdate,
			}
		}
		return nil
	})
}

func (r *MatchRepository) BestPrice(_ context.Context, matchID int64, outcome domain.Outcome) (decimal.Decimal, error) {
	var (
		best  decimal.Decimal
		found bool
	)
	err := r.with(func(st *state) error {
		for key, o := range st.odds {
			if key.matchID != matchID || key.outcome != outcome {
				continue
			}
			if !found || o.Price.GreaterThan(best) {
				best = o.Price
				found = true
			}
		}
		if !found {
			return notFound("BestPrice match `%d` outcome `%s`", matchID, outcome)
		}
		return nil
	})
	return best, err
}
