package audit

import (
	"context"
	"encoding/json"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"effix/infrastructure/metrics"
)

// Service records form submissions. Submissions are logged, never stored.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("audit")}
}

// Write logs one submission and returns its id.
func (s *Service) Write(ctx context.Context, action, entityType string, payload any) (string, error) {
	payloadJSON, err := marshal(payload)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.logger.Info("form submitted",
		zap.String("submission_id", id),
		zap.String("action", action),
		zap.String("entity_type", entityType),
		zap.String("request_id", middleware.GetReqID(ctx)),
		zap.String("payload", payloadJSON),
	)
	metrics.RecordFormSubmission(entityType)
	return id, nil
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
