package impl

import (
	"context"
	"fmt"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"
)

type errorLogService struct {
	errorLogRepo repository.ErrorLogRepository
}

// NewErrorLogService creates a new error log service instance
func NewErrorLogService(errorLogRepo repository.ErrorLogRepository) usecase.ErrorLogUsecase {
	return &errorLogService{errorLogRepo: errorLogRepo}
}

// LogMessages stores one record per reported message.
func (s *errorLogService) LogMessages(ctx context.Context, messages []string) error {
	if len(messages) == 0 {
		return usecase.ErrEmptyLogBatch
	}

	if err := s.errorLogRepo.CreateErrorLogs(ctx, messages); err != nil {
		return fmt.Errorf("failed to persist error logs: %w", err)
	}
	return nil
}

// RecentLogs returns the most recent records, newest first.
func (s *errorLogService) RecentLogs(ctx context.Context, limit int) ([]*entity.ErrorLog, error) {
	logs, err := s.errorLogRepo.RecentErrorLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list error logs: %w", err)
	}
	return logs, nil
}
