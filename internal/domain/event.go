package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventWagerPlaced    EventType = "wager.placed"
	EventWagerSettled   EventType = "wager.settled"
	EventMatchSettled   EventType = "match.settled"
	EventBonusActivated EventType = "bonus.activated"
)

// Event сообщение о зафиксированном изменении состояния. Key используется брокером для партиционирования.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func NewEvent(t EventType, key string, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
