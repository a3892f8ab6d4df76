package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
