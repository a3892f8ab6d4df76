package events

import (
	"context"
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/twmb/franz-go/pkg/kgo"
)

type kafkaProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// KafkaPublisher пишет события в топик Kafka. Ключ записи берется из Event.Key, поэтому события
// одного счета или матча попадают в одну партицию и сохраняют порядок.
type KafkaPublisher struct {
	client kafkaProducer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher: no brokers")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher: empty topic")
	}
	cli, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}
	return newKafkaPublisherWithClient(cli, topic), nil
}

func newKafkaPublisherWithClient(cli kafkaProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{client: cli, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev domain.Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(ev.Key),
		Value: body,
		Headers: []kgo.RecordHeader{
			{Key: "event-type", Value: []byte(ev.Type)},
			{Key: "content-type", Value: []byte(contentTypeJSON)},
		},
		Timestamp: ev.OccurredAt,
	}
	if produceErr := p.client.ProduceSync(ctx, record).FirstErr(); produceErr != nil {
		return fmt.Errorf("kafka produce `%s`: %w", ev.Type, produceErr)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.client.Close()
	return nil
}
