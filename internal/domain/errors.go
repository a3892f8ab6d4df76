package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrConflict       = errors.New("concurrent update conflict")
	ErrUnknown        = errors.New("unknown error")

	ErrUnknownAccount       = errors.New("unknown account")
	ErrInvalidKind          = errors.New("invalid ledger entry kind")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidTransition    = errors.New("invalid ledger entry status transition")
	ErrCorrectionNotAllowed = errors.New("correction is not allowed for this entry kind")

	ErrMatchNotOpen      = errors.New("match is not open for wagers")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBelowMinimumStake = errors.New("stake is below minimum")
	ErrNoQuote           = errors.New("no odds quotation for outcome")
	ErrRateLimited       = errors.New("too many wagers")

	ErrAlreadySettled = errors.New("match already settled")
	ErrInvalidOutcome = errors.New("invalid outcome")

	ErrInvalidReferralCode = errors.New("invalid referral code")
)

// IntegrationError ошибка внешнего участника (брокер событий и т.п.), случившаяся уже после фиксации
// изменений. Изменения при этом не откатываются.
type IntegrationError struct {
	Op  string
	Err error
}

func NewIntegrationError(op string, err error) error {
	return &IntegrationError{Op: op, Err: err}
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration `%s`: %s", e.Op, e.Err.Error())
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}
