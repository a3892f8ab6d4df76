package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrBelowMinimumStake, http.StatusUnprocessableEntity},
		{domain.ErrNoQuote, http.StatusUnprocessableEntity},
		{domain.ErrInvalidReferralCode, http.StatusUnprocessableEntity},
		{domain.ErrMatchNotOpen, http.StatusConflict},
		{domain.ErrAlreadySettled, http.StatusConflict},
		{domain.ErrCorrectionNotAllowed, http.StatusConflict},
		{domain.ErrDuplicateKey, http.StatusConflict},
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
		{domain.ErrUnknownAccount, http.StatusNotFound},
		{domain.ErrRecordNotFound, http.StatusNotFound},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{domain.ErrConflict, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("place wager: %w", tt.err)
			assert.Equal(t, tt.want, statusForError(wrapped))
		})
	}
}

func TestSplitIntegrationError(t *testing.T) {
	integrationErr := &domain.IntegrationError{Op: "wager.placed", Err: errors.New("broker down")}

	got, rest := splitIntegrationError(fmt.Errorf("notify: %w", integrationErr))
	assert.Same(t, integrationErr, got)
	assert.NoError(t, rest)

	got, rest = splitIntegrationError(domain.ErrNoQuote)
	assert.Nil(t, got)
	assert.ErrorIs(t, rest, domain.ErrNoQuote)
}
