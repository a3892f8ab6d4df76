package domain

type EntryKind string

const (
	EntryKindDeposit       EntryKind = "deposit"
	EntryKindWithdrawal    EntryKind = "withdrawal"
	EntryKindBet           EntryKind = "bet"
	EntryKindWin           EntryKind = "win"
	EntryKindReferralBonus EntryKind = "referral_bonus"
	EntryKindRefund        EntryKind = "refund"
)

type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusFailed    EntryStatus = "failed"
)

// IsValid сообщает, является ли статус одним из известных.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusCompleted, EntryStatusFailed:
		return true
	default:
		return false
	}
}

type WagerStatus string

const (
	WagerStatusPending   WagerStatus = "pending"
	WagerStatusWon       WagerStatus = "won"
	WagerStatusLost      WagerStatus = "lost"
	WagerStatusCancelled WagerStatus = "cancelled"
)

type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "upcoming"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
)

// Outcome исход матча. Для ставки допустимы только OutcomeHome и OutcomeAway, результатом матча
// может быть еще и OutcomeCancelled.
type Outcome string

const (
	OutcomeHome      Outcome = "home"
	OutcomeAway      Outcome = "away"
	OutcomeCancelled Outcome = "cancelled"
)

// IsPickable сообщает, можно ли поставить на этот исход.
func (o Outcome) IsPickable() bool {
	return o == OutcomeHome || o == OutcomeAway
}

// IsResult сообщает, может ли исход быть результатом завершенного матча.
func (o Outcome) IsResult() bool {
	return o.IsPickable() || o == OutcomeCancelled
}
