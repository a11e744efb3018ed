package repository

import (
	"context"

	"walletpass/internal/domain/entity"
)

// ErrorLogRepository defines the interface for the client error log sink.
type ErrorLogRepository interface {
	// CreateErrorLogs persists one row per message, preserving order.
	CreateErrorLogs(ctx context.Context, messages []string) error

	// RecentErrorLogs returns the most recent log rows, newest first.
	RecentErrorLogs(ctx context.Context, limit int) ([]*entity.ErrorLog, error)
}
