package order

import (
	"context"
	"errors"
	"fmt"

	domain "ccw_query/internal/domain/order"
	"ccw_query/internal/domain/serial"
	"ccw_query/pkg/logger"
)

// OrderClient is the part of the CCW client the service needs; tests mock it.
type OrderClient interface {
	CheckOrderStatus(ctx context.Context, salesOrder string) (*domain.Document, error)
	serial.PageFetcher
}

// Publisher ships flattened order lines to a sink such as Kafka.
type Publisher interface {
	PublishOrderLines(ctx context.Context, records []domain.ExportRecord) (int, error)
}

var ErrNoPublisher = errors.New("no publisher configured")

type LookupOptions struct {
	// TopLevelOnly keeps only lines numbered "N.0".
	TopLevelOnly bool
	AddSerials   bool
}

// DefaultLookup matches the command-line defaults: top-level lines with serials.
var DefaultLookup = LookupOptions{TopLevelOnly: true, AddSerials: true}

type Service struct {
	client    OrderClient
	publisher Publisher
	log       logger.Logger
}

// NewService wires the service. publisher may be nil when nothing is published.
func NewService(client OrderClient, publisher Publisher, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{client: client, publisher: publisher, log: log}
}

// GetOrderStatus fetches and parses an order and, if asked, merges its serial
// numbers. A failed serial lookup is logged and the order is returned without
// serials.
func (s *Service) GetOrderStatus(ctx context.Context, salesOrder string, opts LookupOptions) (*domain.Order, error) {
	log := s.log.WithContext(ctx).WithFields(logger.SalesOrder(salesOrder))

	doc, err := s.client.CheckOrderStatus(ctx, salesOrder)
	if err != nil {
		return nil, err
	}

	o, err := domain.Parse(doc, opts.TopLevelOnly)
	if err != nil {
		return nil, err
	}
	log.Info("[Order Service] order parsed", logger.Int("lines", o.Len()))

	if !opts.AddSerials {
		return o, nil
	}

	records, err := serial.Collect(ctx, s.client, salesOrder)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("[Order Service] adding serial number information failed", logger.Error(err))
		return o, nil
	}

	merged := o.MergeSerials(records)
	log.Debug("[Order Service] serials merged",
		logger.Int("serial_lines", records.Len()),
		logger.Int("matched", merged),
	)
	return o, nil
}

// PublishOrder looks up an order and publishes one record per line item.
// It returns the number of records published.
func (s *Service) PublishOrder(ctx context.Context, salesOrder string, opts LookupOptions) (int, error) {
	if s.publisher == nil {
		return 0, ErrNoPublisher
	}

	o, err := s.GetOrderStatus(ctx, salesOrder, opts)
	if err != nil {
		return 0, err
	}

	n, err := s.publisher.PublishOrderLines(ctx, o.ExportRecords())
	if err != nil {
		return n, fmt.Errorf("publish order %s: %w", salesOrder, err)
	}
	return n, nil
}
