package estimate

import (
	"context"
	"errors"

	domain "ccw_query/internal/domain/estimate"
	"ccw_query/pkg/logger"
)

type EstimateClient interface {
	AcquireEstimate(ctx context.Context, estimateID string) ([]byte, error)
}

type Service struct {
	client EstimateClient
	log    logger.Logger
}

func NewService(client EstimateClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{client: client, log: log}
}

// GetEstimate fetches and parses one estimate. Failures reported by the API
// come back as *estimate.EstimateError carrying the requested ID.
func (s *Service) GetEstimate(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	raw, err := s.client.AcquireEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	e, err := domain.ParseXML(raw)
	if err != nil {
		var estErr *domain.EstimateError
		if errors.As(err, &estErr) && estErr.EstimateID == "" {
			estErr.EstimateID = estimateID
		}
		return nil, err
	}

	s.log.WithContext(ctx).Info("[Estimate Service] estimate parsed",
		logger.EstimateID(estimateID),
		logger.Int("lines", e.Len()),
	)
	return e, nil
}
