package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/api/testutils"
	"github.com/fsdevblog/umbrella-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	router     *gin.Engine
	accounts   *mocks.MockAccountServicer
	wagers     *mocks.MockWagerServicer
	settlement *mocks.MockSettlementServicer
	referral   *mocks.MockReferralServicer
	matches    *mocks.MockMatchServicer
	ledger     *mocks.MockLedgerServicer
	userID     int64
	userToken  string
	adminToken string
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.accounts = mocks.NewMockAccountServicer(s.ctrl)
	s.wagers = mocks.NewMockWagerServicer(s.ctrl)
	s.settlement = mocks.NewMockSettlementServicer(s.ctrl)
	s.referral = mocks.NewMockReferralServicer(s.ctrl)
	s.matches = mocks.NewMockMatchServicer(s.ctrl)
	s.ledger = mocks.NewMockLedgerServicer(s.ctrl)

	secret := []byte("super secret key")
	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.router, err = New(RouterArgs{
		Logger:            l,
		AccountService:    s.accounts,
		WagerService:      s.wagers,
		SettlementService: s.settlement,
		ReferralService:   s.referral,
		MatchService:      s.matches,
		LedgerService:     s.ledger,
		JWTSecretKey:      secret,
	})
	s.Require().NoError(err)

	s.userID = 42
	s.userToken, err = tokens.GenerateUserJWT(s.userID, time.Hour, secret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateAdminJWT(1, time.Hour, secret)
	s.Require().NoError(err)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// request выполняет запрос и возвращает статус и разобранное тело (nil, если тела нет).
func (s *HandlersTestSuite) request(method, url, token string, payload any) (int, map[string]any) {
	args := testutils.RequestArgs{Router: s.router, Method: method, URL: url}
	if payload != nil {
		body, err := testutils.JSONBody(payload)
		s.Require().NoError(err)
		args.Body = body
	}
	var opts []func(*testutils.RequestOptions)
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}

	res, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)

	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Require().NoError(res.Body.Close())
	if len(raw) == 0 {
		return res.StatusCode, nil
	}
	var body map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func (s *HandlersTestSuite) TestOpenAccount() {
	account := &domain.Account{UserID: s.userID, Balance: decimal.NewFromInt(5000), ReferralCode: "AB12CD34"}

	s.accounts.EXPECT().
		Open(gomock.Any(), service.OpenAccountArgs{UserID: s.userID}).
		Return(account, nil)
	s.accounts.EXPECT().
		Open(gomock.Any(), service.OpenAccountArgs{UserID: s.userID, ReferralCode: "ZZ99ZZ99"}).
		Return(nil, fmt.Errorf("open account: %w", domain.ErrInvalidReferralCode))
	s.accounts.EXPECT().
		Open(gomock.Any(), service.OpenAccountArgs{UserID: s.userID, ReferralCode: "XX11XX11"}).
		Return(nil, fmt.Errorf("open account: %w", domain.ErrDuplicateKey))

	cases := []struct {
		name       string
		token      string
		payload    any
		wantStatus int
	}{
		{name: "without body", token: s.userToken, wantStatus: http.StatusCreated},
		{name: "unknown referral code", token: s.userToken, payload: gin.H{"referral_code": "ZZ99ZZ99"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "already opened", token: s.userToken, payload: gin.H{"referral_code": "XX11XX11"}, wantStatus: http.StatusConflict},
		{name: "malformed code", token: s.userToken, payload: gin.H{"referral_code": "ab-cd"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "not authorized", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+AccountsRoute, tc.token, tc.payload)
			s.Equal(tc.wantStatus, status)
			if status == http.StatusCreated {
				s.Equal("5000.00", body["balance"])
				s.Equal("AB12CD34", body["referral_code"])
			}
		})
	}
}

func (s *HandlersTestSuite) TestPlaceWager() {
	wager := &domain.Wager{
		ID:           9,
		AccountID:    s.userID,
		MatchID:      3,
		Outcome:      domain.OutcomeHome,
		Stake:        decimal.NewFromInt(40),
		Odds:         decimal.RequireFromString("2.00"),
		PotentialWin: decimal.NewFromInt(80),
		Status:       domain.WagerStatusPending,
	}

	respondWith := func(w *domain.Wager, err error) func(context.Context, service.PlaceWagerArgs) (*domain.Wager, error) {
		return func(_ context.Context, args service.PlaceWagerArgs) (*domain.Wager, error) {
			s.Equal(s.userID, args.AccountID)
			return w, err
		}
	}
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).DoAndReturn(respondWith(wager, nil))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(wager, domain.NewIntegrationError("wager.placed", errors.New("broker down"))))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(nil, fmt.Errorf("place wager: %w", domain.ErrInsufficientFunds)))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(nil, fmt.Errorf("place wager: %w", domain.ErrMatchNotOpen)))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(nil, fmt.Errorf("place wager: %w", domain.ErrRateLimited)))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(nil, fmt.Errorf("place wager: %w", domain.ErrBelowMinimumStake)))
	s.wagers.EXPECT().Place(gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(nil, errors.New("pg: connection reset")))

	valid := gin.H{"match_id": 3, "outcome": "home", "stake": "40"}
	cases := []struct {
		name       string
		payload    any
		wantStatus int
		wantNotice bool
	}{
		{name: "placed", payload: valid, wantStatus: http.StatusCreated},
		{name: "placed, notification failed", payload: valid, wantStatus: http.StatusCreated, wantNotice: true},
		{name: "insufficient funds", payload: valid, wantStatus: http.StatusPaymentRequired},
		{name: "match not open", payload: valid, wantStatus: http.StatusConflict},
		{name: "rate limited", payload: valid, wantStatus: http.StatusTooManyRequests},
		{name: "below minimum", payload: valid, wantStatus: http.StatusUnprocessableEntity},
		{name: "storage failure", payload: valid, wantStatus: http.StatusInternalServerError},
		{name: "fractional cents", payload: gin.H{"match_id": 3, "outcome": "home", "stake": "10.001"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "zero stake", payload: gin.H{"match_id": 3, "outcome": "home", "stake": 0}, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing match", payload: gin.H{"outcome": "home", "stake": "10"}, wantStatus: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+WagersRoute, s.userToken, tc.payload)
			s.Require().Equal(tc.wantStatus, status)
			if status == http.StatusCreated {
				s.Equal("80.00", body["potential_win"])
				s.Equal("2", body["odds"])
				s.InDelta(9, body["wager_id"], 0)
				_, hasNotice := body["notification_error"]
				s.Equal(tc.wantNotice, hasNotice)
			}
			if status == http.StatusInternalServerError {
				s.Equal("internal server error", body["error"])
			}
		})
	}
}

func (s *HandlersTestSuite) TestEntries() {
	token := uuid.New()
	entries := []domain.LedgerEntry{
		{Token: token, AccountID: s.userID, Amount: decimal.NewFromInt(40), Kind: domain.EntryKindBet, Status: domain.EntryStatusCompleted},
	}

	s.accounts.EXPECT().
		Entries(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, filter service.EntriesFilter) ([]domain.LedgerEntry, error) {
			s.Require().NotNil(filter.Kind)
			s.Equal(domain.EntryKindBet, *filter.Kind)
			s.Nil(filter.Status)
			return entries, nil
		})
	s.accounts.EXPECT().
		Entries(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + EntriesRoute + "?kind=bet",
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var got []EntryResponse
	s.Require().NoError(testutils.DecodeJSON(res, &got))
	s.Require().Len(got, 1)
	s.Equal(token.String(), got[0].Token)
	s.Equal("40.00", got[0].Amount)

	status, _ := s.request(http.MethodGet, RouteGroup+EntriesRoute+"?status=pending", s.userToken, nil)
	s.Equal(http.StatusNoContent, status)

	status, _ = s.request(http.MethodGet, RouteGroup+EntriesRoute+"?status=lost", s.userToken, nil)
	s.Equal(http.StatusUnprocessableEntity, status)
}

func (s *HandlersTestSuite) TestBalanceAndStats() {
	s.accounts.EXPECT().Balance(gomock.Any(), s.userID).Return(decimal.RequireFromString("60.5"), nil)
	s.accounts.EXPECT().Stats(gomock.Any(), s.userID).Return(&service.BettingStats{
		Total: 4, Won: 1, Lost: 2, Pending: 1, WinRate: decimal.RequireFromString("33.33"),
	}, nil)
	s.accounts.EXPECT().Balance(gomock.Any(), s.userID).
		Return(decimal.Zero, fmt.Errorf("balance: %w", domain.ErrUnknownAccount))

	status, body := s.request(http.MethodGet, RouteGroup+BalanceRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.Equal("60.50", body["balance"])

	status, body = s.request(http.MethodGet, RouteGroup+StatsRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.Equal("33.33", body["win_rate"])
	s.InDelta(4, body["total"], 0)

	status, _ = s.request(http.MethodGet, RouteGroup+BalanceRoute, s.userToken, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *HandlersTestSuite) TestAdminRequired() {
	paths := []struct {
		method string
		url    string
	}{
		{http.MethodPost, RouteGroup + "/internal/accounts/2/confirm"},
		{http.MethodPost, RouteGroup + "/internal/accounts/2/void-bonuses"},
		{http.MethodPut, RouteGroup + MatchesRoute},
		{http.MethodPut, RouteGroup + "/admin/matches/1/odds"},
		{http.MethodPost, RouteGroup + "/admin/matches/1/finish"},
		{http.MethodPost, RouteGroup + "/admin/entries/" + uuid.NewString() + "/correct"},
		{http.MethodGet, RouteGroup + "/admin/accounts/2/reconcile"},
	}
	for _, p := range paths {
		s.Run(p.method+" "+p.url, func() {
			status, _ := s.request(p.method, p.url, s.userToken, nil)
			s.Equal(http.StatusForbidden, status)
		})
	}
}

func (s *HandlersTestSuite) TestFinishMatch() {
	summary := &service.SettlementSummary{
		MatchID: 1, Outcome: domain.OutcomeHome, Won: 2, Lost: 3, TotalPaid: decimal.NewFromInt(160),
	}
	s.settlement.EXPECT().Finish(gomock.Any(), int64(1), domain.OutcomeHome).Return(summary, nil)
	s.settlement.EXPECT().Finish(gomock.Any(), int64(1), domain.OutcomeAway).
		Return(nil, fmt.Errorf("finish match: %w", domain.ErrAlreadySettled))
	s.settlement.EXPECT().Finish(gomock.Any(), int64(2), domain.OutcomeCancelled).
		Return(summary, domain.NewIntegrationError("match.settled", errors.New("broker down")))

	cases := []struct {
		name       string
		url        string
		payload    any
		wantStatus int
	}{
		{name: "settled", url: "/admin/matches/1/finish", payload: gin.H{"outcome": "home"}, wantStatus: http.StatusOK},
		{name: "already settled", url: "/admin/matches/1/finish", payload: gin.H{"outcome": "away"}, wantStatus: http.StatusConflict},
		{name: "notification failed", url: "/admin/matches/2/finish", payload: gin.H{"outcome": "cancelled"}, wantStatus: http.StatusOK},
		{name: "unknown outcome", url: "/admin/matches/1/finish", payload: gin.H{"outcome": "draw"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "bad id", url: "/admin/matches/abc/finish", payload: gin.H{"outcome": "home"}, wantStatus: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+tc.url, s.adminToken, tc.payload)
			s.Require().Equal(tc.wantStatus, status)
			if status == http.StatusOK {
				s.Equal("160.00", body["total_paid"])
				s.InDelta(2, body["won"], 0)
			}
		})
	}
}

func (s *HandlersTestSuite) TestUpsertMatchAndOdds() {
	commence := time.Date(2026, 11, 1, 19, 30, 0, 0, time.UTC)
	s.matches.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.Match{
		ID: 5, ExternalID: "ext-5", SportKey: "soccer_epl", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		CommenceTime: commence, Status: domain.MatchStatusUpcoming,
	}, nil)
	status, body := s.request(http.MethodPut, RouteGroup+MatchesRoute, s.adminToken, gin.H{
		"external_id": "ext-5", "sport_key": "soccer_epl", "home_team": "Arsenal", "away_team": "Chelsea",
		"commence_time": commence,
	})
	s.Require().Equal(http.StatusOK, status)
	s.InDelta(5, body["id"], 0)
	s.Equal("upcoming", body["status"])

	s.matches.EXPECT().
		UpsertOdds(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, quotes []service.OddsQuote) error {
			s.Require().Len(quotes, 2)
			s.True(quotes[1].Price.Equal(decimal.RequireFromString("3.5")))
			return nil
		})
	status, _ = s.request(http.MethodPut, RouteGroup+"/admin/matches/5/odds", s.adminToken, gin.H{"odds": []gin.H{
		{"bookmaker": "bet365", "outcome": "home", "price": "2.10"},
		{"bookmaker": "bet365", "outcome": "away", "price": "3.50"},
	}})
	s.Equal(http.StatusNoContent, status)

	invalid := []struct {
		name string
		odds gin.H
	}{
		{name: "price not above one", odds: gin.H{"bookmaker": "bet365", "outcome": "home", "price": "1"}},
		{name: "result outcome", odds: gin.H{"bookmaker": "bet365", "outcome": "cancelled", "price": "2"}},
		{name: "price finer than cents", odds: gin.H{"bookmaker": "bet365", "outcome": "home", "price": "2.105"}},
		{
			name: "bookmaker too long",
			odds: gin.H{"bookmaker": testutils.GenerateOverBytesUnderRunes(20), "outcome": "home", "price": "2"},
		},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			st, _ := s.request(http.MethodPut, RouteGroup+"/admin/matches/5/odds", s.adminToken,
				gin.H{"odds": []gin.H{tc.odds}})
			s.Equal(http.StatusUnprocessableEntity, st)
		})
	}
}

func (s *HandlersTestSuite) TestReferralRoutes() {
	s.referral.EXPECT().Activate(gomock.Any(), int64(2)).Return(nil)
	s.referral.EXPECT().Activate(gomock.Any(), int64(3)).
		Return(domain.NewIntegrationError("bonus.activated", errors.New("broker down")))
	s.referral.EXPECT().Activate(gomock.Any(), int64(4)).
		Return(fmt.Errorf("activate: %w", domain.ErrUnknownAccount))
	s.referral.EXPECT().VoidPendingBonuses(gomock.Any(), int64(2)).Return(2, nil)

	status, body := s.request(http.MethodPost, RouteGroup+"/internal/accounts/2/confirm", s.adminToken, nil)
	s.Equal(http.StatusOK, status)
	s.NotContains(body, "notification_error")

	status, body = s.request(http.MethodPost, RouteGroup+"/internal/accounts/3/confirm", s.adminToken, nil)
	s.Equal(http.StatusOK, status)
	s.Contains(body, "notification_error")

	status, _ = s.request(http.MethodPost, RouteGroup+"/internal/accounts/4/confirm", s.adminToken, nil)
	s.Equal(http.StatusNotFound, status)

	status, body = s.request(http.MethodPost, RouteGroup+"/internal/accounts/2/void-bonuses", s.adminToken, nil)
	s.Equal(http.StatusOK, status)
	s.InDelta(2, body["voided"], 0)
}

func (s *HandlersTestSuite) TestCorrectEntry() {
	token := uuid.New()
	s.ledger.EXPECT().Correct(gomock.Any(), token, domain.EntryStatusFailed).Return(&domain.LedgerEntry{
		Token: token, Amount: decimal.NewFromInt(300), Kind: domain.EntryKindDeposit, Status: domain.EntryStatusFailed,
	}, nil)
	s.ledger.EXPECT().Correct(gomock.Any(), token, domain.EntryStatusFailed).
		Return(nil, fmt.Errorf("correct entry: %w", domain.ErrCorrectionNotAllowed))

	url := RouteGroup + "/admin/entries/" + token.String() + "/correct"

	status, body := s.request(http.MethodPost, url, s.adminToken, gin.H{"status": "failed"})
	s.Equal(http.StatusOK, status)
	s.Equal("failed", body["status"])

	status, _ = s.request(http.MethodPost, url, s.adminToken, gin.H{"status": "failed"})
	s.Equal(http.StatusConflict, status)

	// исправленная запись не возвращается в pending
	status, _ = s.request(http.MethodPost, url, s.adminToken, gin.H{"status": "pending"})
	s.Equal(http.StatusUnprocessableEntity, status)

	status, _ = s.request(http.MethodPost, url, s.adminToken, gin.H{"status": "completed"})
	s.Equal(http.StatusUnprocessableEntity, status)

	status, _ = s.request(http.MethodPost, RouteGroup+"/admin/entries/not-a-uuid/correct", s.adminToken,
		gin.H{"status": "failed"})
	s.Equal(http.StatusBadRequest, status)
}

func (s *HandlersTestSuite) TestReconcile() {
	s.accounts.EXPECT().Reconcile(gomock.Any(), int64(2)).Return(&service.Reconciliation{
		AccountID: 2,
		Balance:   decimal.NewFromInt(140),
		Expected:  decimal.NewFromInt(140),
		Drift:     decimal.Zero,
	}, nil)

	status, body := s.request(http.MethodGet, RouteGroup+"/admin/accounts/2/reconcile", s.adminToken, nil)
	s.Equal(http.StatusOK, status)
	s.Equal("0.00", body["drift"])
	s.Equal(true, body["consistent"])
}
