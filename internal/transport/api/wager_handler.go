package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WagerHandler struct {
	svs WagerServicer
}

func NewWagerHandler(svs WagerServicer) *WagerHandler {
	return &WagerHandler{svs: svs}
}

type PlaceWagerParams struct {
	MatchID int64           `binding:"required,gt=0"  json:"match_id"`
	Outcome domain.Outcome  `binding:"required"       json:"outcome"`
	Stake   decimal.Decimal `binding:"required,money" json:"stake"`
}

// Place POST RouteGroup + WagersRoute. Принимает ставку текущего пользователя по лучшему коэффициенту.
func (h *WagerHandler) Place(c *gin.Context) {
	var params PlaceWagerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wager, err := h.svs.Place(ctx, service.PlaceWagerArgs{
		AccountID: getUserIDFromContext(c),
		MatchID:   params.MatchID,
		Outcome:   params.Outcome,
		Stake:     params.Stake,
	})
	integrationErr, err := splitIntegrationError(err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"wager_id":      wager.ID,
		"match_id":      wager.MatchID,
		"outcome":       wager.Outcome,
		"stake":         money(wager.Stake),
		"odds":          wager.Odds.String(),
		"potential_win": money(wager.PotentialWin),
		"status":        wager.Status,
	}, integrationErr)
}
