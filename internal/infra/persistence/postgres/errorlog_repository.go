package postgres

import (
	"context"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// errorLogRepository implements the repository.ErrorLogRepository interface.
type errorLogRepository struct {
	db *gorm.DB
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(db *gorm.DB) repository.ErrorLogRepository {
	return &errorLogRepository{
		db: db,
	}
}

// CreateErrorLogs persists one row per message in a single batch insert.
func (repo *errorLogRepository) CreateErrorLogs(ctx context.Context, messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	logModels := make([]*model.ErrorLogModel, 0, len(messages))
	for _, message := range messages {
		logModels = append(logModels, &model.ErrorLogModel{Message: message})
	}

	if err := repo.db.WithContext(ctx).Create(&logModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create error logs")
	}

	return nil
}

// RecentErrorLogs returns the most recent log rows, newest first.
func (repo *errorLogRepository) RecentErrorLogs(ctx context.Context, limit int) ([]*entity.ErrorLog, error) {
	var logModels []*model.ErrorLogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list error logs")
	}

	logs := make([]*entity.ErrorLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.ErrorLog{
			ID:        logM.ID,
			Message:   logM.Message,
			CreatedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}
