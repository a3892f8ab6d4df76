package events

import (
	"context"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/sirupsen/logrus"
)

// LogPublisher пишет события в лог. Используется, когда брокер не настроен.
type LogPublisher struct {
	l *logrus.Entry
}

func NewLogPublisher(l *logrus.Logger) *LogPublisher {
	return &LogPublisher{l: l.WithFields(logrus.Fields{"component": "events", "module": "log"})}
}

func (p *LogPublisher) Publish(_ context.Context, ev domain.Event) error {
	p.l.WithFields(logrus.Fields{
		"id":      ev.ID,
		"type":    ev.Type,
		"key":     ev.Key,
		"payload": ev.Payload,
	}).Info("event")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
