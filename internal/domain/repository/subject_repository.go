// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for subject persistence.
var (
	// ErrSubjectNotFound is returned when a subject is not found.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrDuplicateSubject is returned when trying to create a subject that already exists.
	ErrDuplicateSubject = errors.New("subject already exists")
	// ErrPersonalizationExists is returned when a subject already carries a personalization record.
	ErrPersonalizationExists = errors.New("subject already personalized")
)

// SubjectRepository defines the interface for subject-related database operations.
type SubjectRepository interface {
	// CreateSubject persists a new subject.
	CreateSubject(ctx context.Context, subject *entity.Subject) error

	// FindSubject retrieves a subject by kind, type identifier and serial number.
	// The personalization record, when present, is eagerly loaded.
	FindSubject(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serial uuid.UUID) (*entity.Subject, error)

	// TouchSubject bumps the subject's updated_at watermark to at least t.
	// The watermark never moves backwards.
	TouchSubject(ctx context.Context, id uuid.UUID, t time.Time) error

	// DeleteSubject removes a subject; its registrations cascade away with it.
	DeleteSubject(ctx context.Context, id uuid.UUID) error

	// AttachPersonalization stores the personalization record for a subject.
	AttachPersonalization(ctx context.Context, personalization *entity.UserPersonalization) error
}
