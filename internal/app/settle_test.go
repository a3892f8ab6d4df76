package app

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/memrepo"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type SettleTestSuite struct {
	suite.Suite
	store  *memrepo.Store
	logger *logrus.Logger
	svs    *service.AppServices
}

func TestSettleSuite(t *testing.T) {
	suite.Run(t, new(SettleTestSuite))
}

func (s *SettleTestSuite) SetupTest() {
	s.store = memrepo.New()
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)

	var err error
	s.svs, err = service.Factory(service.FactoryArgs{
		UOW:                   s.store,
		MinStake:              decimal.NewFromInt(10),
		WelcomeBalance:        decimal.NewFromInt(100),
		ReferralBonusNew:      decimal.NewFromInt(500),
		ReferralBonusReferrer: decimal.NewFromInt(1000),
		Logger:                s.logger,
	})
	s.Require().NoError(err)
}

func (s *SettleTestSuite) TestSettlePrintsSummary() {
	ctx := s.T().Context()
	_, err := s.svs.AccountService.Open(ctx, service.OpenAccountArgs{UserID: 1})
	s.Require().NoError(err)

	match, err := s.svs.MatchService.Upsert(ctx, repoargs.UpsertMatch{
		ExternalID:   "ext-1",
		SportKey:     "soccer_epl",
		HomeTeam:     "Arsenal",
		AwayTeam:     "Chelsea",
		CommenceTime: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Require().NoError(s.svs.MatchService.UpsertOdds(ctx, match.ID, []service.OddsQuote{
		{Bookmaker: "bet365", Outcome: domain.OutcomeHome, Price: decimal.NewFromInt(2)},
	}))
	_, err = s.svs.WagerService.Place(ctx, service.PlaceWagerArgs{
		AccountID: 1, MatchID: match.ID, Outcome: domain.OutcomeHome, Stake: decimal.NewFromInt(40),
	})
	s.Require().NoError(err)

	var out bytes.Buffer
	s.Require().NoError(settleWith(ctx, s.store, match.ID, domain.OutcomeHome, s.logger, &out))
	s.Contains(out.String(), "won 1, lost 0, cancelled 0, paid 80.00")

	out.Reset()
	err = settleWith(ctx, s.store, match.ID, domain.OutcomeHome, s.logger, &out)
	s.Require().ErrorIs(err, domain.ErrAlreadySettled)
	s.Empty(out.String())
}
