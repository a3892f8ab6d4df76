package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	UserID         int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Balance        decimal.Decimal
	ReferralCode   string
	ReferredBy     *int64
	EmailConfirmed bool
}

// LedgerEntry запись о денежном событии. Amount всегда положительна, знак влияния на баланс
// определяется видом записи (см. SignedAmount). EffectApplied выставляется ровно тогда, когда
// влияние записи учтено в балансе счета.
type LedgerEntry struct {
	ID                  int64
	Token               uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	AccountID           int64
	Amount              decimal.Decimal
	Kind                EntryKind
	Status              EntryStatus
	EffectApplied       bool
	Comment             string
	ReferencedAccountID *int64
	MatchID             *int64
	WagerID             *int64
}

type Wager struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AccountID    int64
	MatchID      int64
	Outcome      Outcome
	Stake        decimal.Decimal
	Odds         decimal.Decimal
	PotentialWin decimal.Decimal
	Status       WagerStatus
}

type Match struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ExternalID   string
	SportKey     string
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
	Status       MatchStatus
	Result       *Outcome
}

// IsOpenAt сообщает, принимает ли матч ставки в момент now.
func (m *Match) IsOpenAt(now time.Time) bool {
	return m.Status == MatchStatusUpcoming && m.CommenceTime.After(now)
}

// IsSettled сообщает, рассчитан ли матч.
func (m *Match) IsSettled() bool {
	return m.Status == MatchStatusCompleted && m.Result != nil
}

func (m *Match) Title() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

type Odds struct {
	MatchID    int64
	Bookmaker  string
	Outcome    Outcome
	Price      decimal.Decimal
	LastUpdate time.Time
}
