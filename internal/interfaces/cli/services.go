package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	estimateapp "ccw_query/internal/application/estimate"
	orderapp "ccw_query/internal/application/order"
	"ccw_query/internal/config"
	"ccw_query/internal/domain/estimate"
	"ccw_query/internal/domain/order"
	"ccw_query/internal/infrastructure/http/ccw"
	"ccw_query/internal/infrastructure/messaging/kafka"
	"ccw_query/pkg/logger"
)

type helloAPI interface {
	Hello(ctx context.Context) (bool, error)
}

type orderService interface {
	GetOrderStatus(ctx context.Context, salesOrder string, opts orderapp.LookupOptions) (*order.Order, error)
	PublishOrder(ctx context.Context, salesOrder string, opts orderapp.LookupOptions) (int, error)
}

type estimateService interface {
	GetEstimate(ctx context.Context, estimateID string) (*estimate.Estimate, error)
}

type services struct {
	hello     helloAPI
	orders    orderService
	estimates estimateService
	close     func()
}

// newServices is replaced in tests.
var newServices = buildServices

// buildServices logs in and wires the services. The Kafka producer is only
// created when withPublisher is set.
func buildServices(cmd *cobra.Command, withPublisher bool) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	if err := resolveCredentials(&cfg.CCW, cmd.InOrStdin(), cmd.ErrOrStderr(), !noPrompt); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	session, err := ccw.NewSession(ctx, cfg.CCW, nil)
	if err != nil {
		return nil, err
	}
	client := ccw.NewClient(session, cfg.CCW.BaseURL, log)

	closers := []func(){func() { _ = log.Sync() }}
	var publisher orderapp.Publisher
	if withPublisher {
		producer, err := kafka.NewOrderLineProducer(cfg.Kafka, log)
		if err != nil {
			return nil, err
		}
		publisher = producer
		closers = append(closers, func() { _ = producer.Close(context.Background()) })
	}

	return &services{
		hello:     client,
		orders:    orderapp.NewService(client, publisher, log),
		estimates: estimateapp.NewService(client, log),
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		},
	}, nil
}

var credentialLabels = map[string]string{
	config.EnvClientID:     "CCW Client ID",
	config.EnvClientSecret: "CCW Client Secret",
	config.EnvUsername:     "CCO Username",
	config.EnvPassword:     "CCO Password",
}

// resolveCredentials asks for every missing credential, or fails listing
// them when interactive is false.
func resolveCredentials(cfg *config.CCWConfig, in io.Reader, out io.Writer, interactive bool) error {
	missing := cfg.Missing()
	if len(missing) == 0 {
		return nil
	}
	if !interactive {
		return fmt.Errorf("cannot derive credentials, please set environment variables: %v", missing)
	}

	p := newPrompter(in, out)
	for _, key := range missing {
		value, err := p.ask(fmt.Sprintf("Please enter %s: ", credentialLabels[key]), config.IsSecret(key))
		if err != nil {
			return fmt.Errorf("read %s: %w", credentialLabels[key], err)
		}
		if err := cfg.Set(key, value); err != nil {
			return err
		}
	}
	return cfg.Validate()
}
