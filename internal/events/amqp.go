package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const amqpDialTimeout = 10 * time.Second

type amqpChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

// AMQPPublisher публикует события в topic exchange RabbitMQ, ключ маршрутизации совпадает с типом события
// (wager.placed, match.settled и т.д.).
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	if exchange == "" {
		return nil, fmt.Errorf("amqp publisher: empty exchange")
	}
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(amqpDialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("amqp publisher: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("amqp publisher: channel: %w", err), conn.Close())
	}
	if declErr := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); declErr != nil {
		return nil, errors.Join(fmt.Errorf("amqp publisher: declare exchange: %w", declErr), conn.Close())
	}
	p := newAMQPPublisherWithChannel(ch, exchange)
	p.conn = conn
	return p, nil
}

func newAMQPPublisherWithChannel(ch amqpChannel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, exchange: exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev domain.Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}
	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Type:         string(ev.Type),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}
	if pubErr := p.channel.PublishWithContext(ctx, p.exchange, string(ev.Type), false, false, msg); pubErr != nil {
		return fmt.Errorf("amqp publish `%s`: %w", ev.Type, pubErr)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err //nolint:wrapcheck
}
