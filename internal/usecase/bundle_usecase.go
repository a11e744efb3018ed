package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
	"walletpass/internal/errors"
)

// ErrNotModified indicates the subject has not changed since the caller's
// conditional timestamp, so no archive was produced.
var ErrNotModified = errors.New("subject not modified")

// SubjectBundle is a fully signed, downloadable archive of a single subject.
type SubjectBundle struct {
	Archive      []byte
	MIMEType     string
	LastModified time.Time
}

// BundleUsecase produces signed wallet archives on demand.
type BundleUsecase interface {
	// SubjectBundle builds the signed archive for one subject. When
	// ifModifiedSince is set and the subject has not been updated after
	// it, ErrNotModified is returned instead of an archive.
	SubjectBundle(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID, ifModifiedSince *time.Time) (*SubjectBundle, error)

	// SubjectBundleSet builds a set archive containing one signed pass
	// archive per serial number. Sets are only defined for passes.
	SubjectBundleSet(ctx context.Context, typeIdentifier string, serialNumbers []uuid.UUID) ([]byte, error)
}
