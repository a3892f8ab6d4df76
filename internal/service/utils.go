package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	defaultConflictRetries = 3
	defaultConflictBackoff = 50 * time.Millisecond

	referralCodeLength   = 8
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// doWithRetry выполняет fn в транзакции u. Если транзакция завершилась ошибкой ErrConflict, она повторяется
// до defaultConflictRetries раз с растущей паузой.
func doWithRetry(ctx context.Context, u uow.UOW, fn func(context.Context, uow.TX) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.Do(ctx, fn)
		if !errors.Is(err, domain.ErrConflict) || attempt >= defaultConflictRetries {
			return err
		}
		delay := time.Duration(jitter(float64(defaultConflictBackoff*time.Duration(attempt+1)), 0.15, 0.15))
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
	}
}

// getRepo возвращает репозиторий транзакции, приведенный к T.
func getRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name))
}

// notify отправляет события после фиксации транзакции. Ошибка доставки оборачивается в IntegrationError.
func notify(ctx context.Context, n Notifier, l *logrus.Entry, op string, events []domain.Event) error {
	if n == nil || len(events) == 0 {
		return nil
	}
	if err := n.Notify(ctx, events...); err != nil {
		l.WithError(err).WithField("op", op).Error("event notification failed after commit")
		return domain.NewIntegrationError(op, err)
	}
	return nil
}

// generateReferralCode возвращает случайный код из заглавных латинских букв и цифр.
func generateReferralCode() string {
	var b strings.Builder
	b.Grow(referralCodeLength)
	for range referralCodeLength {
		b.WriteByte(referralCodeAlphabet[rand.IntN(len(referralCodeAlphabet))]) // nolint:gosec
	}
	return b.String()
}

func int64Ptr(v int64) *int64 {
	return &v
}
