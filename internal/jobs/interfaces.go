package jobs

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

type MatchStarter interface {
	MarkStartedLive(ctx context.Context, now time.Time) (int64, error)
}
