package kafka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	kafkago "github.com/segmentio/kafka-go"

	app "ccw_query/internal/application/order"
	"ccw_query/internal/config"
	"ccw_query/pkg/logger"
)

// LookupRequest asks for one sales order to be looked up and published. A
// message may also carry just the sales order number as plain text.
type LookupRequest struct {
	SalesOrder       string `json:"sales_order"`
	CollectSublevels bool   `json:"collect_sublevels"`
	SkipSerials      bool   `json:"skip_serials"`
}

func (r LookupRequest) Options() app.LookupOptions {
	return app.LookupOptions{
		TopLevelOnly: !r.CollectSublevels,
		AddSerials:   !r.SkipSerials,
	}
}

func decodeLookup(value []byte) (LookupRequest, error) {
	value = bytes.TrimSpace(value)
	var req LookupRequest
	if len(value) > 0 && value[0] == '{' {
		if err := json.Unmarshal(value, &req); err != nil {
			return req, fmt.Errorf("decode lookup request: %w", err)
		}
	} else {
		req.SalesOrder = string(value)
	}
	req.SalesOrder = strings.TrimSpace(req.SalesOrder)
	if req.SalesOrder == "" {
		return req, errors.New("lookup request without sales order")
	}
	return req, nil
}

type LookupHandler interface {
	PublishOrder(ctx context.Context, salesOrder string, opts app.LookupOptions) (int, error)
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

// LookupConsumer reads sales order numbers from the lookup topic and hands
// each to the order service. Bad requests and failed lookups are logged and
// skipped; only a read error stops the loop.
type LookupConsumer struct {
	reader  messageReader
	handler LookupHandler
	log     logger.Logger
}

func NewLookupConsumer(cfg config.KafkaConfig, handler LookupHandler, log logger.Logger) *LookupConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.LookupTopic,
		MinBytes: 1,
		MaxBytes: 1e6,
	})
	return newLookupConsumer(reader, handler, log)
}

func newLookupConsumer(reader messageReader, handler LookupHandler, log logger.Logger) *LookupConsumer {
	if log == nil {
		log = logger.NewNop()
	}
	return &LookupConsumer{reader: reader, handler: handler, log: log}
}

func (c *LookupConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read lookup message: %w", err)
		}
		c.handle(ctx, msg)
	}
}

func (c *LookupConsumer) handle(ctx context.Context, msg kafkago.Message) {
	req, err := decodeLookup(msg.Value)
	if err != nil {
		c.log.Warn("[Kafka Consumer] Skipping message",
			logger.Int64("offset", msg.Offset),
			logger.Error(err),
		)
		return
	}

	ctx = logger.ContextWithFields(ctx, logger.SalesOrder(req.SalesOrder))
	n, err := c.handler.PublishOrder(ctx, req.SalesOrder, req.Options())
	if err != nil {
		c.log.WithContext(ctx).Error("[Kafka Consumer] Lookup failed", logger.Error(err))
		return
	}
	c.log.WithContext(ctx).Info("[Kafka Consumer] Order published", logger.Int("lines", n))
}

func (c *LookupConsumer) Close() {
	_ = c.reader.Close()
}
