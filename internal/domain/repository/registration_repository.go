package repository

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDuplicateRegistration is returned when the (device, subject) pair is already registered.
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// SerialsResult is the outcome of a registrations-for-device query: the
// distinct serial numbers registered to the device and the most recent
// subject watermark among them.
type SerialsResult struct {
	SerialNumbers []string
	LastUpdated   time.Time
}

// RegistrationRepository defines the interface for registration-related database operations.
type RegistrationRepository interface {
	// CreateRegistration persists a new device-subject registration.
	CreateRegistration(ctx context.Context, registration *entity.Registration) error

	// FindRegistration retrieves the registration joining a device and a subject.
	FindRegistration(ctx context.Context, deviceID int64, subjectID uuid.UUID) (*entity.Registration, error)

	// FindRegistrationForDevice locates the registration for a device's
	// library identifier and a subject, used by the unregister flow.
	FindRegistrationForDevice(ctx context.Context, libraryIdentifier string, subjectID uuid.UUID) (*entity.Registration, error)

	// SerialsForDevice lists the distinct subject serials registered to a
	// device for one subject kind and type identifier, optionally restricted
	// to subjects updated after modifiedSince.
	SerialsForDevice(ctx context.Context, libraryIdentifier string, kind entity.SubjectKind, typeIdentifier string, modifiedSince *time.Time) (*SerialsResult, error)

	// RegistrationsForSubject retrieves all registrations for a subject with
	// the device side eagerly loaded, in a single round trip.
	RegistrationsForSubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Registration, error)

	// DeleteRegistration removes a registration by its ID.
	DeleteRegistration(ctx context.Context, id int64) error
}
