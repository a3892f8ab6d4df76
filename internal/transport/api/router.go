package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	settlementTimeout     = 30 * time.Second
)

const (
	RouteGroup          = "/api"
	AccountsRoute       = "/accounts"
	BalanceRoute        = "/account/balance"
	EntriesRoute        = "/account/entries"
	StatsRoute          = "/account/stats"
	WagersRoute         = "/wagers"
	ConfirmAccountRoute = "/internal/accounts/:id/confirm"
	VoidBonusesRoute    = "/internal/accounts/:id/void-bonuses"
	MatchesRoute        = "/admin/matches"
	MatchOddsRoute      = "/admin/matches/:id/odds"
	FinishMatchRoute    = "/admin/matches/:id/finish"
	CorrectEntryRoute   = "/admin/entries/:token/correct"
	ReconcileRoute      = "/admin/accounts/:id/reconcile"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	AccountService    AccountServicer
	WagerService      WagerServicer
	SettlementService SettlementServicer
	ReferralService   ReferralServicer
	MatchService      MatchServicer
	LedgerService     LedgerServicer
	JWTSecretKey      []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.AccountService)
	wagerHandler := NewWagerHandler(args.WagerService)
	adminHandler := NewAdminHandler(AdminHandlerArgs{
		Accounts:   args.AccountService,
		Settlement: args.SettlementService,
		Referral:   args.ReferralService,
		Matches:    args.MatchService,
		Ledger:     args.LedgerService,
	})

	api := r.Group(RouteGroup)
	// все роуты группы требуют авторизованного пользователя.
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))

	api.POST(AccountsRoute, accountHandler.Open)
	api.GET(BalanceRoute, accountHandler.Balance)
	api.GET(EntriesRoute, accountHandler.Entries)
	api.GET(StatsRoute, accountHandler.Stats)
	api.POST(WagersRoute, wagerHandler.Place)

	admin := api.Group("", middlewares.AdminRequired())
	admin.POST(ConfirmAccountRoute, adminHandler.ConfirmAccount)
	admin.POST(VoidBonusesRoute, adminHandler.VoidBonuses)
	admin.PUT(MatchesRoute, adminHandler.UpsertMatch)
	admin.PUT(MatchOddsRoute, adminHandler.UpsertOdds)
	admin.POST(FinishMatchRoute, adminHandler.FinishMatch)
	admin.POST(CorrectEntryRoute, adminHandler.CorrectEntry)
	admin.GET(ReconcileRoute, adminHandler.Reconcile)
	return r, nil
}
