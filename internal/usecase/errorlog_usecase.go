package usecase

import (
	"context"

	"walletpass/internal/domain/entity"
	"walletpass/internal/errors"
)

// ErrEmptyLogBatch indicates a log submission carried no messages.
var ErrEmptyLogBatch = errors.New("empty log batch")

// ErrorLogUsecase persists diagnostic messages reported by devices.
type ErrorLogUsecase interface {
	// LogMessages stores one record per message. An empty batch is
	// rejected with ErrEmptyLogBatch.
	LogMessages(ctx context.Context, messages []string) error

	// RecentLogs returns the most recent records, newest first.
	RecentLogs(ctx context.Context, limit int) ([]*entity.ErrorLog, error)
}
