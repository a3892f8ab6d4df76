// Package events публикует доменные события во внешние брокеры сообщений.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/sirupsen/logrus"
)

const contentTypeJSON = "application/json"

// Driver способ доставки событий.
type Driver string

const (
	DriverLog   Driver = "log"
	DriverKafka Driver = "kafka"
	DriverAMQP  Driver = "amqp"
)

func (d Driver) IsValid() bool {
	switch d {
	case DriverLog, DriverKafka, DriverAMQP:
		return true
	}
	return false
}

func encode(ev domain.Event) ([]byte, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode event `%s`: %w", ev.Type, err)
	}
	return body, nil
}

// Publisher доставляет одно событие до брокера.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
	Close() error
}

type Config struct {
	Driver       Driver
	KafkaBrokers []string
	KafkaTopic   string
	AMQPURL      string
	AMQPExchange string
}

// New создает публикатор для выбранного драйвера.
func New(cfg Config, l *logrus.Logger) (Publisher, error) {
	switch cfg.Driver {
	case DriverKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	case DriverAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	case DriverLog, "":
		return NewLogPublisher(l), nil
	}
	return nil, fmt.Errorf("events: unknown driver `%s`", cfg.Driver)
}
