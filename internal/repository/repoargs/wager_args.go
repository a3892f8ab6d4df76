package repoargs

import (
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateWager struct {
	AccountID    int64
	MatchID      int64
	Outcome      domain.Outcome
	Stake        decimal.Decimal
	Odds         decimal.Decimal
	PotentialWin decimal.Decimal
}

// WagerStats количество ставок счета в разрезе статусов.
type WagerStats struct {
	Total     int64
	Pending   int64
	Won       int64
	Lost      int64
	Cancelled int64
}
