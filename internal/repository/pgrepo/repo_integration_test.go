package pgrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// RepoIntegrationTestSuite прогоняется на реальной базе, адрес которой задан в TEST_DATABASE_URI.
type RepoIntegrationTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	unit *uow.UnitOfWork
}

func TestRepoIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	pool, err := Connect(context.Background(), "../../db/migrations", os.Getenv("TEST_DATABASE_URI"), l)
	s.Require().NoError(err)
	s.pool = pool

	s.unit, err = NewUnitOfWork(pool)
	s.Require().NoError(err)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *RepoIntegrationTestSuite) createAccount(ctx context.Context) *domain.Account {
	repo := NewAccountRepository(s.pool)
	acc, err := repo.Create(ctx, repoargs.CreateAccount{
		UserID:       gofakeit.Int64() & 0x7fffffff,
		ReferralCode: gofakeit.Regex("[A-Z0-9]{8}"),
	})
	s.Require().NoError(err)
	return acc
}

func (s *RepoIntegrationTestSuite) TestAccount_AddBalanceAndNotFound() {
	ctx := s.T().Context()
	acc := s.createAccount(ctx)
	repo := NewAccountRepository(s.pool)

	updated, err := repo.AddBalance(ctx, acc.UserID, decimal.RequireFromString("12.50"))
	s.Require().NoError(err)
	s.True(updated.Balance.Equal(decimal.RequireFromString("12.50")))

	_, err = repo.Get(ctx, -1)
	s.ErrorIs(err, domain.ErrRecordNotFound)

	s.ErrorIs(repo.SetEmailConfirmed(ctx, -1), domain.ErrRecordNotFound)
}

func (s *RepoIntegrationTestSuite) TestLedgerEntry_ClaimEffectAndTotals() {
	ctx := s.T().Context()
	acc := s.createAccount(ctx)
	repo := NewLedgerEntryRepository(s.pool)

	entry, err := repo.Create(ctx, repoargs.CreateLedgerEntry{
		Token:     uuid.New(),
		AccountID: acc.UserID,
		Amount:    decimal.NewFromInt(40),
		Kind:      domain.EntryKindDeposit,
		Status:    domain.EntryStatusCompleted,
	})
	s.Require().NoError(err)

	claimed, err := repo.ClaimEffect(ctx, entry.ID, true)
	s.Require().NoError(err)
	s.True(claimed)
	claimed, err = repo.ClaimEffect(ctx, entry.ID, true)
	s.Require().NoError(err)
	s.False(claimed)

	totals, err := repo.CompletedTotals(ctx, acc.UserID)
	s.Require().NoError(err)
	s.Require().Len(totals, 1)
	s.Equal(domain.EntryKindDeposit, totals[0].Kind)
	s.True(totals[0].Total.Equal(decimal.NewFromInt(40)))

	_, err = repo.Create(ctx, repoargs.CreateLedgerEntry{
		Token:     entry.Token,
		AccountID: acc.UserID,
		Amount:    decimal.NewFromInt(1),
		Kind:      domain.EntryKindDeposit,
		Status:    domain.EntryStatusPending,
	})
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *RepoIntegrationTestSuite) TestMatch_ClaimResultInsideUOW() {
	ctx := s.T().Context()
	matches := NewMatchRepository(s.pool)
	m, err := matches.Upsert(ctx, repoargs.UpsertMatch{
		ExternalID:   uuid.NewString(),
		SportKey:     "soccer_epl",
		HomeTeam:     gofakeit.Name(),
		AwayTeam:     gofakeit.Name(),
		CommenceTime: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)

	err = s.unit.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, getErr := uow.GetAs[*MatchRepository](tx, uow.RepositoryName(repoargs.MatchRepoName))
		s.Require().NoError(getErr)
		if _, lockErr := repo.GetForUpdate(ctx, m.ID); lockErr != nil {
			return lockErr
		}
		claimed, claimErr := repo.ClaimResult(ctx, m.ID, domain.OutcomeAway)
		s.True(claimed)
		return claimErr
	})
	s.Require().NoError(err)

	claimed, err := matches.ClaimResult(ctx, m.ID, domain.OutcomeHome)
	s.Require().NoError(err)
	s.False(claimed)

	got, err := matches.Get(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(domain.MatchStatusCompleted, got.Status)
	s.Require().NotNil(got.Result)
	s.Equal(domain.OutcomeAway, *got.Result)
}
