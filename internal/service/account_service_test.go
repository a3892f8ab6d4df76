package service

import (
	"context"
	"io"
	"testing"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/internal/service/mocks"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/umbrella-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockEntryRepo   *mocks.MockLedgerEntryRepository
	service         *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockEntryRepo = mocks.NewMockLedgerEntryRepository(s.mockCtrl)
	mockWagerRepo := mocks.NewMockWagerRepository(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.AccountRepoName:     s.mockAccountRepo,
		repoargs.LedgerEntryRepoName: s.mockEntryRepo,
		repoargs.WagerRepoName:       mockWagerRepo,
	}
	for name, repo := range repos {
		mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	ledger, err := NewLedgerService(mockUOW, l)
	s.Require().NoError(err)
	referral := NewReferralService(ReferralServiceArgs{
		UOW:           mockUOW,
		Ledger:        ledger,
		BonusNew:      decimal.NewFromInt(500),
		BonusReferrer: decimal.NewFromInt(1000),
		Logger:        l,
	})
	s.service, err = NewAccountService(AccountServiceArgs{
		UOW:      mockUOW,
		Ledger:   ledger,
		Referral: referral,
		Logger:   l,
	})
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestOpen_LocksReferrerBeforeCreatingAccount() {
	referrer := &domain.Account{UserID: 1, ReferralCode: "REFERRER"}
	invitee := &domain.Account{UserID: 2, ReferredBy: int64Ptr(1)}

	// код нового счета свободен
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), gomock.Not("REFERRER")).
		Return(nil, domain.ErrRecordNotFound).AnyTimes()

	gomock.InOrder(
		s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "REFERRER").Return(referrer, nil),
		s.mockAccountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(referrer, nil),
		s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(invitee, nil),
	)
	// блокировки под запись бонусов
	s.mockAccountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(referrer, nil).AnyTimes()
	s.mockAccountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(invitee, nil).AnyTimes()

	s.mockEntryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(domain.EntryStatusPending, args.Status)
			return &domain.LedgerEntry{
				AccountID: args.AccountID,
				Amount:    args.Amount,
				Kind:      args.Kind,
				Status:    args.Status,
			}, nil
		},
	).Times(2)
	s.mockAccountRepo.EXPECT().Get(gomock.Any(), int64(2)).Return(invitee, nil)

	acc, err := s.service.Open(s.T().Context(), OpenAccountArgs{UserID: 2, ReferralCode: "REFERRER"})
	s.Require().NoError(err)
	s.Equal(int64(1), *acc.ReferredBy)
}

func (s *AccountServiceTestSuite) TestOpen_UnknownReferralCode() {
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "NOPE0000").Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Open(s.T().Context(), OpenAccountArgs{UserID: 2, ReferralCode: "NOPE0000"})
	s.Require().ErrorIs(err, domain.ErrInvalidReferralCode)
}
