package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusForError сопоставляет доменную ошибку http статусу.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBelowMinimumStake),
		errors.Is(err, domain.ErrNoQuote),
		errors.Is(err, domain.ErrInvalidOutcome),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidReferralCode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMatchNotOpen),
		errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCorrectionNotAllowed),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// abortWithServiceError прерывает запрос с ошибкой сервисного слоя. Текст клиентских ошибок отдается в ответе,
// внутренние ошибки только логируются.
func abortWithServiceError(c *gin.Context, err error) {
	status := statusForError(err)
	errType := gin.ErrorTypePublic
	if status == http.StatusInternalServerError {
		errType = gin.ErrorTypePrivate
	}
	_ = c.AbortWithError(status, err).SetType(errType)
}

// abortWithBindError прерывает запрос с ошибкой разбора параметров.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
}

// splitIntegrationError отделяет ошибку доставки событий (операция при этом зафиксирована) от ошибки самой операции.
func splitIntegrationError(err error) (*domain.IntegrationError, error) {
	var integrationErr *domain.IntegrationError
	if errors.As(err, &integrationErr) {
		return integrationErr, nil
	}
	return nil, err
}

// respond отдает тело ответа. Если после фиксации не удалось отправить уведомления, добавляет поле notification_error.
func respond(c *gin.Context, status int, body gin.H, integrationErr *domain.IntegrationError) {
	if integrationErr != nil {
		body["notification_error"] = integrationErr.Error()
	}
	c.JSON(status, body)
}
