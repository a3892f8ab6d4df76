package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminHandler служебные маршруты: загрузка матчей и котировок, расчет, бонусы, исправления и сверка.
type AdminHandler struct {
	accounts   AccountServicer
	settlement SettlementServicer
	referral   ReferralServicer
	matches    MatchServicer
	ledger     LedgerServicer
}

type AdminHandlerArgs struct {
	Accounts   AccountServicer
	Settlement SettlementServicer
	Referral   ReferralServicer
	Matches    MatchServicer
	Ledger     LedgerServicer
}

func NewAdminHandler(args AdminHandlerArgs) *AdminHandler {
	return &AdminHandler{
		accounts:   args.Accounts,
		settlement: args.Settlement,
		referral:   args.Referral,
		matches:    args.Matches,
		ledger:     args.Ledger,
	}
}

// ConfirmAccount POST RouteGroup + ConfirmAccountRoute. Подтверждение email счета, активирует реферальные бонусы.
func (h *AdminHandler) ConfirmAccount(c *gin.Context) {
	accountID, idErr := idParam(c, "id")
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	integrationErr, err := splitIntegrationError(h.referral.Activate(ctx, accountID))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"account_id": accountID, "email_confirmed": true}, integrationErr)
}

// VoidBonuses POST RouteGroup + VoidBonusesRoute. Аннулирует ожидающие реферальные бонусы счета.
func (h *AdminHandler) VoidBonuses(c *gin.Context) {
	accountID, idErr := idParam(c, "id")
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	voided, err := h.referral.VoidPendingBonuses(ctx, accountID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": accountID, "voided": voided})
}

type UpsertMatchParams struct {
	ExternalID   string    `binding:"required,max_bytes=128" json:"external_id"`
	SportKey     string    `binding:"required,max_bytes=64"  json:"sport_key"`
	HomeTeam     string    `binding:"required,max_bytes=128" json:"home_team"`
	AwayTeam     string    `binding:"required,max_bytes=128" json:"away_team"`
	CommenceTime time.Time `binding:"required"               json:"commence_time"`
}

type MatchResponse struct {
	ID           int64              `json:"id"`
	ExternalID   string             `json:"external_id"`
	SportKey     string             `json:"sport_key"`
	HomeTeam     string             `json:"home_team"`
	AwayTeam     string             `json:"away_team"`
	CommenceTime time.Time          `json:"commence_time"`
	Status       domain.MatchStatus `json:"status"`
	Result       *domain.Outcome    `json:"result,omitempty"`
}

// UpsertMatch PUT RouteGroup + MatchesRoute. Создает или обновляет матч по внешнему идентификатору.
func (h *AdminHandler) UpsertMatch(c *gin.Context) {
	var params UpsertMatchParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	match, err := h.matches.Upsert(ctx, repoargs.UpsertMatch{
		ExternalID:   params.ExternalID,
		SportKey:     params.SportKey,
		HomeTeam:     params.HomeTeam,
		AwayTeam:     params.AwayTeam,
		CommenceTime: params.CommenceTime,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MatchResponse{
		ID:           match.ID,
		ExternalID:   match.ExternalID,
		SportKey:     match.SportKey,
		HomeTeam:     match.HomeTeam,
		AwayTeam:     match.AwayTeam,
		CommenceTime: match.CommenceTime,
		Status:       match.Status,
		Result:       match.Result,
	})
}

type OddsParam struct {
	Bookmaker  string          `binding:"required,max_bytes=64"   json:"bookmaker"`
	Outcome    domain.Outcome  `binding:"required,oneof=home away" json:"outcome"`
	Price      decimal.Decimal `binding:"required,price"          json:"price"`
	LastUpdate time.Time       `json:"last_update"`
}

type UpsertOddsParams struct {
	Odds []OddsParam `binding:"required,min=1,dive" json:"odds"`
}

// UpsertOdds PUT RouteGroup + MatchOddsRoute. Обновляет котировки букмекеров по матчу.
func (h *AdminHandler) UpsertOdds(c *gin.Context) {
	matchID, idErr := idParam(c, "id")
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypePublic)
		return
	}
	var params UpsertOddsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	quotes := make([]service.OddsQuote, len(params.Odds))
	for i, o := range params.Odds {
		quotes[i] = service.OddsQuote{
			Bookmaker:  o.Bookmaker,
			Outcome:    o.Outcome,
			Price:      o.Price,
			LastUpdate: o.LastUpdate,
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.matches.UpsertOdds(ctx, matchID, quotes); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type FinishMatchParams struct {
	Outcome domain.Outcome `binding:"required,oneof=home away cancelled" json:"outcome"`
}

// FinishMatch POST RouteGroup + FinishMatchRoute. Завершает матч и рассчитывает ставки.
func (h *AdminHandler) FinishMatch(c *gin.Context) {
	matchID, idErr := idParam(c, "id")
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypePublic)
		return
	}
	var params FinishMatchParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, settlementTimeout)
	defer cancel()

	summary, err := h.settlement.Finish(ctx, matchID, params.Outcome)
	integrationErr, err := splitIntegrationError(err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"match_id":   summary.MatchID,
		"outcome":    summary.Outcome,
		"won":        summary.Won,
		"lost":       summary.Lost,
		"cancelled":  summary.Cancelled,
		"total_paid": money(summary.TotalPaid),
	}, integrationErr)
}

type CorrectEntryParams struct {
	Status domain.EntryStatus `binding:"required,oneof=failed" json:"status"`
}

// CorrectEntry POST RouteGroup + CorrectEntryRoute. Исправляет ошибочно завершенную запись пополнения или вывода.
func (h *AdminHandler) CorrectEntry(c *gin.Context) {
	token, parseErr := uuid.Parse(c.Param("token"))
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypePublic)
		return
	}
	var params CorrectEntryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.ledger.Correct(ctx, token, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEntryResponse(entry))
}

// Reconcile GET RouteGroup + ReconcileRoute. Сверка баланса счета с его записями.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	accountID, idErr := idParam(c, "id")
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rec, err := h.accounts.Reconcile(ctx, accountID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account_id": rec.AccountID,
		"balance":    money(rec.Balance),
		"expected":   money(rec.Expected),
		"drift":      money(rec.Drift),
		"consistent": rec.Drift.IsZero(),
	})
}
