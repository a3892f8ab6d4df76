package repoargs

import (
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLedgerEntry struct {
	Token               uuid.UUID
	AccountID           int64
	Amount              decimal.Decimal
	Kind                domain.EntryKind
	Status              domain.EntryStatus
	Comment             string
	ReferencedAccountID *int64
	MatchID             *int64
	WagerID             *int64
}

// LedgerEntryFilter условия выборки записей. Пустые поля не участвуют в фильтрации.
type LedgerEntryFilter struct {
	AccountID           *int64
	ReferencedAccountID *int64
	Status              *domain.EntryStatus
	Kind                *domain.EntryKind
	Limit               uint
}

// KindTotal сумма завершенных записей одного вида.
type KindTotal struct {
	Kind  domain.EntryKind
	Total decimal.Decimal
}
