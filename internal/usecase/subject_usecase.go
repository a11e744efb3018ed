package usecase

import (
	"context"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
	"walletpass/internal/errors"
)

// ErrInvalidAuthToken indicates the presented token does not match the
// subject's authentication token.
var ErrInvalidAuthToken = errors.New("invalid authentication token")

// SubjectUsecase provisions subjects and authenticates per-subject tokens.
type SubjectUsecase interface {
	// Create mints a subject of the given type with a fresh serial number
	// and a random authentication token.
	Create(ctx context.Context, kind entity.SubjectKind, typeIdentifier string) (*entity.Subject, error)

	// Touch advances the subject's update watermark to now. The watermark
	// never moves backwards.
	Touch(ctx context.Context, id uuid.UUID) error

	// Authenticate resolves the subject and verifies the presented token
	// in constant time. A mismatch yields ErrInvalidAuthToken.
	Authenticate(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID, token string) (*entity.Subject, error)
}
