package memrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = New()
}

func (s *StoreTestSuite) accounts() *AccountRepository {
	repo, err := uow.GetRepositoryAs[*AccountRepository](s.store, uow.RepositoryName(repoargs.AccountRepoName))
	s.Require().NoError(err)
	return repo
}

func (s *StoreTestSuite) TestRegisterUnsupported() {
	err := s.store.Register("any", func(uow.DBTX) uow.Repository { return nil })
	s.ErrorIs(err, uow.ErrRegistrationUnsupported)
}

func (s *StoreTestSuite) TestDo_RollbackOnError() {
	ctx := s.T().Context()
	_, err := s.accounts().Create(ctx, repoargs.CreateAccount{UserID: 1, ReferralCode: "AAAAAAAA"})
	s.Require().NoError(err)

	boom := errors.New("boom")
	err = s.store.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, getErr := uow.GetAs[*AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		s.Require().NoError(getErr)
		if _, addErr := repo.AddBalance(ctx, 1, decimal.NewFromInt(100)); addErr != nil {
			return addErr
		}
		_, createErr := repo.Create(ctx, repoargs.CreateAccount{UserID: 2, ReferralCode: "BBBBBBBB"})
		s.Require().NoError(createErr)
		return boom
	})
	s.Require().ErrorIs(err, boom)

	acc, err := s.accounts().Get(ctx, 1)
	s.Require().NoError(err)
	s.True(acc.Balance.IsZero())

	_, err = s.accounts().Get(ctx, 2)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *StoreTestSuite) TestAccount_DuplicateReferralCode() {
	ctx := s.T().Context()
	_, err := s.accounts().Create(ctx, repoargs.CreateAccount{UserID: 1, ReferralCode: "AAAAAAAA"})
	s.Require().NoError(err)

	_, err = s.accounts().Create(ctx, repoargs.CreateAccount{UserID: 2, ReferralCode: "AAAAAAAA"})
	s.ErrorIs(err, domain.ErrDuplicateKey)

	_, err = s.accounts().Create(ctx, repoargs.CreateAccount{UserID: 1, ReferralCode: "CCCCCCCC"})
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *StoreTestSuite) TestLedgerEntry_ClaimEffect() {
	ctx := s.T().Context()
	_, err := s.accounts().Create(ctx, repoargs.CreateAccount{UserID: 1, ReferralCode: "AAAAAAAA"})
	s.Require().NoError(err)

	repo, err := uow.GetRepositoryAs[*LedgerEntryRepository](s.store, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	s.Require().NoError(err)

	entry, err := repo.Create(ctx, repoargs.CreateLedgerEntry{
		Token:     uuid.New(),
		AccountID: 1,
		Amount:    decimal.NewFromInt(10),
		Kind:      domain.EntryKindDeposit,
		Status:    domain.EntryStatusCompleted,
	})
	s.Require().NoError(err)
	s.False(entry.EffectApplied)

	claimed, err := repo.ClaimEffect(ctx, entry.ID, true)
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = repo.ClaimEffect(ctx, entry.ID, true)
	s.Require().NoError(err)
	s.False(claimed)

	claimed, err = repo.ClaimEffect(ctx, entry.ID, false)
	s.Require().NoError(err)
	s.True(claimed)
}

func (s *StoreTestSuite) TestMatch_ClaimResultOnce() {
	ctx := s.T().Context()
	repo, err := uow.GetRepositoryAs[*MatchRepository](s.store, uow.RepositoryName(repoargs.MatchRepoName))
	s.Require().NoError(err)

	m, err := repo.Upsert(ctx, repoargs.UpsertMatch{
		ExternalID:   "ext-1",
		HomeTeam:     "Home",
		AwayTeam:     "Away",
		CommenceTime: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(domain.MatchStatusUpcoming, m.Status)

	claimed, err := repo.ClaimResult(ctx, m.ID, domain.OutcomeHome)
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = repo.ClaimResult(ctx, m.ID, domain.OutcomeAway)
	s.Require().NoError(err)
	s.False(claimed)

	// повторный upsert не трогает результат
	m, err = repo.Upsert(ctx, repoargs.UpsertMatch{ExternalID: "ext-1", HomeTeam: "H", AwayTeam: "A"})
	s.Require().NoError(err)
	s.Equal(domain.MatchStatusCompleted, m.Status)
	s.Require().NotNil(m.Result)
	s.Equal(domain.OutcomeHome, *m.Result)
}

func (s *StoreTestSuite) TestMatch_BestPrice() {
	ctx := s.T().Context()
	repo, err := uow.GetRepositoryAs[*MatchRepository](s.store, uow.RepositoryName(repoargs.MatchRepoName))
	s.Require().NoError(err)

	m, err := repo.Upsert(ctx, repoargs.UpsertMatch{ExternalID: "ext-2", CommenceTime: time.Now().Add(time.Hour)})
	s.Require().NoError(err)

	_, err = repo.BestPrice(ctx, m.ID, domain.OutcomeHome)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	s.Require().NoError(repo.UpsertOdds(ctx, []repoargs.UpsertOdds{
		{MatchID: m.ID, Bookmaker: "a", Outcome: domain.OutcomeHome, Price: decimal.RequireFromString("1.85")},
		{MatchID: m.ID, Bookmaker: "b", Outcome: domain.OutcomeHome, Price: decimal.RequireFromString("1.95")},
		{MatchID: m.ID, Bookmaker: "b", Outcome: domain.OutcomeAway, Price: decimal.RequireFromString("2.10")},
	}))

	price, err := repo.BestPrice(ctx, m.ID, domain.OutcomeHome)
	s.Require().NoError(err)
	s.True(price.Equal(decimal.RequireFromString("1.95")))

	err = repo.UpsertOdds(ctx, []repoargs.UpsertOdds{{MatchID: 999, Bookmaker: "a", Outcome: domain.OutcomeHome}})
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
