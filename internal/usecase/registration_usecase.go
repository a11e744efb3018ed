package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/errors"
)

// ErrNoRegistrations indicates the device holds no registrations matching
// the requested type, which callers surface as an empty result rather than
// a failure.
var ErrNoRegistrations = errors.New("no registrations for device")

// RegisterOutcome distinguishes a newly created registration from an
// idempotent re-registration of the same device and subject.
type RegisterOutcome int

const (
	RegistrationCreated RegisterOutcome = iota
	RegistrationExists
)

// RegistrationUsecase manages the device/subject registration lifecycle.
type RegistrationUsecase interface {
	// Register binds a device to a subject, creating the device record on
	// first contact. Registering an already registered pair succeeds and
	// reports RegistrationExists.
	Register(ctx context.Context, input RegisterInput) (RegisterOutcome, error)

	// SerialsForDevice lists the serial numbers of every subject of the
	// given type registered to the device. When modifiedSince is set and
	// nothing changed after it, or the device has no matching
	// registrations, ErrNoRegistrations is returned.
	SerialsForDevice(ctx context.Context, input SerialsInput) (*repository.SerialsResult, error)

	// Unregister removes the registration binding the device to the
	// subject. The device record itself is kept; other registrations it
	// holds are unaffected.
	Unregister(ctx context.Context, input UnregisterInput) error
}

type RegisterInput struct {
	LibraryIdentifier string
	PushToken         string
	Kind              entity.SubjectKind
	TypeIdentifier    string
	SerialNumber      uuid.UUID
}

type SerialsInput struct {
	LibraryIdentifier string
	Kind              entity.SubjectKind
	TypeIdentifier    string
	ModifiedSince     *time.Time
}

type UnregisterInput struct {
	LibraryIdentifier string
	Kind              entity.SubjectKind
	TypeIdentifier    string
	SerialNumber      uuid.UUID
}
