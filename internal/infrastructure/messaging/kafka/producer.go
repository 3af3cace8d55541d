package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"ccw_query/internal/config"
	"ccw_query/internal/domain/order"
	"ccw_query/internal/infrastructure/encoding/avro"
	"ccw_query/pkg/logger"
)

const (
	headerLineNumber = "line_number"
	headerSchema     = "schema"
	schemaName       = "com.cisco.ccw.order.OrderLine"
)

// OrderLineProducer publishes Avro-encoded order lines keyed by sales order,
// so all lines of one order land on the same partition.
type OrderLineProducer struct {
	client  *kgo.Client
	topic   string
	encoder *avro.Encoder
	log     logger.Logger
	now     func() time.Time
}

func NewOrderLineProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderLineProducer, error) {
	if log == nil {
		log = logger.NewNop()
	}
	log.Info("[Kafka Producer] Connecting to brokers",
		logger.Strings("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderLineTopic),
	)

	encoder, err := avro.NewOrderLineEncoder()
	if err != nil {
		return nil, err
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderLineTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderLineProducer{
		client:  client,
		topic:   cfg.OrderLineTopic,
		encoder: encoder,
		log:     log,
		now:     time.Now,
	}, nil
}

// buildRecords encodes every line; nothing is sent if one fails to encode.
func (p *OrderLineProducer) buildRecords(lines []order.ExportRecord) ([]*kgo.Record, error) {
	ts := p.now().UTC()
	out := make([]*kgo.Record, 0, len(lines))
	for _, line := range lines {
		value, err := p.encoder.EncodeOrderLine(line)
		if err != nil {
			return nil, fmt.Errorf("encode line %s of %s: %w", line.LineNumber, line.SalesOrder, err)
		}

		key := line.SalesOrder
		if key == "" {
			key = uuid.NewString()
		}
		out = append(out, &kgo.Record{
			Topic:     p.topic,
			Key:       []byte(key),
			Value:     value,
			Timestamp: ts,
			Headers: []kgo.RecordHeader{
				{Key: headerLineNumber, Value: []byte(line.LineNumber)},
				{Key: headerSchema, Value: []byte(schemaName)},
			},
		})
	}
	return out, nil
}

// PublishOrderLines produces all lines synchronously and returns how many
// the brokers acknowledged.
func (p *OrderLineProducer) PublishOrderLines(ctx context.Context, lines []order.ExportRecord) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("no order lines to publish")
	}

	records, err := p.buildRecords(lines)
	if err != nil {
		return 0, err
	}

	results := p.client.ProduceSync(ctx, records...)

	sent := 0
	for _, r := range results {
		if r.Err == nil {
			sent++
		}
	}
	if err := results.FirstErr(); err != nil {
		p.log.Error("[Kafka Producer] Failed to publish",
			logger.String("topic", p.topic),
			logger.Int("sent", sent),
			logger.Int("total", len(records)),
			logger.Error(err),
		)
		return sent, fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.log.Debug("[Kafka Producer] Published order lines",
		logger.String("topic", p.topic),
		logger.Int("count", sent),
	)
	return sent, nil
}

func (p *OrderLineProducer) Close(ctx context.Context) error {
	p.log.Info("[Kafka Producer] Closing producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
