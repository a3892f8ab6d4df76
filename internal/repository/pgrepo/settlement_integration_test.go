package pgrepo

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func (s *RepoIntegrationTestSuite) services() *service.AppServices {
	l := logrus.New()
	l.SetOutput(io.Discard)
	svs, err := service.Factory(service.FactoryArgs{
		UOW:                   s.unit,
		MinStake:              decimal.NewFromInt(10),
		WelcomeBalance:        decimal.NewFromInt(100),
		ReferralBonusNew:      decimal.NewFromInt(500),
		ReferralBonusReferrer: decimal.NewFromInt(1000),
		Logger:                l,
	})
	s.Require().NoError(err)
	return svs
}

func (s *RepoIntegrationTestSuite) openMatch(ctx context.Context, svs *service.AppServices) *domain.Match {
	m, err := svs.MatchService.Upsert(ctx, repoargs.UpsertMatch{
		ExternalID:   uuid.NewString(),
		SportKey:     "soccer_epl",
		HomeTeam:     gofakeit.City(),
		AwayTeam:     gofakeit.City(),
		CommenceTime: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Require().NoError(svs.MatchService.UpsertOdds(ctx, m.ID, []service.OddsQuote{
		{Bookmaker: "bet365", Outcome: domain.OutcomeHome, Price: decimal.NewFromInt(2), LastUpdate: time.Now()},
		{Bookmaker: "bet365", Outcome: domain.OutcomeAway, Price: decimal.NewFromInt(3), LastUpdate: time.Now()},
	}))
	return m
}

func (s *RepoIntegrationTestSuite) openAccount(ctx context.Context, svs *service.AppServices) int64 {
	acc, err := svs.AccountService.Open(ctx, service.OpenAccountArgs{UserID: gofakeit.Int64() & 0x7fffffff})
	s.Require().NoError(err)
	return acc.UserID
}

func (s *RepoIntegrationTestSuite) TestFinish_ConcurrentCallsSettleOnce() {
	ctx := s.T().Context()
	svs := s.services()
	m := s.openMatch(ctx, svs)
	userID := s.openAccount(ctx, svs)

	_, err := svs.WagerService.Place(ctx, service.PlaceWagerArgs{
		AccountID: userID, MatchID: m.ID, Outcome: domain.OutcomeHome, Stake: decimal.NewFromInt(40),
	})
	s.Require().NoError(err)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		settled   []*service.SettlementSummary
		rejected  int
		unexpected []error
	)
	start := make(chan struct{})
	for i := range callers {
		wg.Add(1)
		outcome := domain.OutcomeHome
		if i%2 == 1 {
			outcome = domain.OutcomeAway
		}
		go func() {
			defer wg.Done()
			<-start
			summary, finishErr := svs.SettlementService.Finish(ctx, m.ID, outcome)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case finishErr == nil:
				settled = append(settled, summary)
			case errors.Is(finishErr, domain.ErrAlreadySettled):
				rejected++
			default:
				unexpected = append(unexpected, finishErr)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Require().Empty(unexpected)
	s.Require().Len(settled, 1)
	s.Equal(callers-1, rejected)

	want := "60"
	if settled[0].Outcome == domain.OutcomeHome {
		want = "140"
		s.Equal(1, settled[0].Won)
	} else {
		s.Equal(1, settled[0].Lost)
	}
	balance, err := svs.AccountService.Balance(ctx, userID)
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.RequireFromString(want)), balance.String())

	rec, err := svs.AccountService.Reconcile(ctx, userID)
	s.Require().NoError(err)
	s.True(rec.Drift.IsZero(), rec.Drift.String())
}

func (s *RepoIntegrationTestSuite) TestPlace_ConcurrentNeverOverdraws() {
	ctx := s.T().Context()
	svs := s.services()
	m := s.openMatch(ctx, svs)
	userID := s.openAccount(ctx, svs)

	const attempts = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		declined int
	)
	start := make(chan struct{})
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, placeErr := svs.WagerService.Place(ctx, service.PlaceWagerArgs{
				AccountID: userID, MatchID: m.ID, Outcome: domain.OutcomeAway, Stake: decimal.NewFromInt(10),
			})
			mu.Lock()
			defer mu.Unlock()
			if placeErr == nil {
				placed++
				return
			}
			s.ErrorIs(placeErr, domain.ErrInsufficientFunds)
			declined++
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(10, placed)
	s.Equal(attempts-10, declined)

	balance, err := svs.AccountService.Balance(ctx, userID)
	s.Require().NoError(err)
	s.True(balance.IsZero(), balance.String())
}
