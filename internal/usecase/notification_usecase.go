package usecase

import (
	"context"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
)

// NotificationUsecase pushes update notifications to every device
// registered for a subject.
type NotificationUsecase interface {
	// Notify sends a wake notification to each device registered for the
	// subject. Devices whose tokens the gateway reports as invalid are
	// cleaned up in place; their failures are not reported to the caller.
	Notify(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID) error

	// Tokens lists the push tokens that Notify would target, without
	// sending anything.
	Tokens(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID) ([]string, error)
}
