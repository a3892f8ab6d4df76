package repoargs

import (
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type UpsertMatch struct {
	ExternalID   string
	SportKey     string
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
}

type UpsertOdds struct {
	MatchID    int64
	Bookmaker  string
	Outcome    domain.Outcome
	Price      decimal.Decimal
	LastUpdate time.Time
}
