package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/service"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	svs AccountServicer
}

func NewAccountHandler(svs AccountServicer) *AccountHandler {
	return &AccountHandler{svs: svs}
}

type OpenAccountParams struct {
	ReferralCode string `binding:"omitempty,alphanum,max_bytes=16" json:"referral_code"`
}

type AccountResponse struct {
	UserID         int64     `json:"user_id"`
	Balance        string    `json:"balance"`
	ReferralCode   string    `json:"referral_code"`
	ReferredBy     *int64    `json:"referred_by,omitempty"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

// Open POST RouteGroup + AccountsRoute. Открывает счет пользователю из токена. Тело запроса необязательно.
func (h *AccountHandler) Open(c *gin.Context) {
	var params OpenAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.Open(ctx, service.OpenAccountArgs{
		UserID:       getUserIDFromContext(c),
		ReferralCode: params.ReferralCode,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{
		UserID:         account.UserID,
		Balance:        money(account.Balance),
		ReferralCode:   account.ReferralCode,
		ReferredBy:     account.ReferredBy,
		EmailConfirmed: account.EmailConfirmed,
		CreatedAt:      account.CreatedAt,
	})
}

// Balance GET RouteGroup + BalanceRoute.
func (h *AccountHandler) Balance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Balance(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": money(balance)})
}

type EntriesQuery struct {
	Status string `binding:"omitempty,oneof=pending completed failed"                            form:"status"`
	Kind   string `binding:"omitempty,oneof=deposit withdrawal bet win referral_bonus refund" form:"kind"`
	Limit  uint   `binding:"omitempty,max=500"                                                form:"limit"`
}

type EntryResponse struct {
	Token               string             `json:"token"`
	Amount              string             `json:"amount"`
	Kind                domain.EntryKind   `json:"kind"`
	Status              domain.EntryStatus `json:"status"`
	Comment             string             `json:"comment,omitempty"`
	ReferencedAccountID *int64             `json:"referenced_account_id,omitempty"`
	MatchID             *int64             `json:"match_id,omitempty"`
	WagerID             *int64             `json:"wager_id,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func newEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		Token:               e.Token.String(),
		Amount:              money(e.Amount),
		Kind:                e.Kind,
		Status:              e.Status,
		Comment:             e.Comment,
		ReferencedAccountID: e.ReferencedAccountID,
		MatchID:             e.MatchID,
		WagerID:             e.WagerID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// Entries GET RouteGroup + EntriesRoute. Записи счета, новые первыми.
func (h *AccountHandler) Entries(c *gin.Context) {
	var query EntriesQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	filter := service.EntriesFilter{Limit: query.Limit}
	if query.Status != "" {
		status := domain.EntryStatus(query.Status)
		filter.Status = &status
	}
	if query.Kind != "" {
		kind := domain.EntryKind(query.Kind)
		filter.Kind = &kind
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.svs.Entries(ctx, getUserIDFromContext(c), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]EntryResponse, len(entries))
	for i := range entries {
		response[i] = newEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, response)
}

type StatsResponse struct {
	Total     int64  `json:"total"`
	Pending   int64  `json:"pending"`
	Won       int64  `json:"won"`
	Lost      int64  `json:"lost"`
	Cancelled int64  `json:"cancelled"`
	WinRate   string `json:"win_rate"`
}

// Stats GET RouteGroup + StatsRoute.
func (h *AccountHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.svs.Stats(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Won:       stats.Won,
		Lost:      stats.Lost,
		Cancelled: stats.Cancelled,
		WinRate:   money(stats.WinRate),
	})
}
