package impl

import (
	"context"
	"errors"
	"fmt"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"
)

type registrationService struct {
	subjectRepo      repository.SubjectRepository
	deviceRepo       repository.DeviceRepository
	registrationRepo repository.RegistrationRepository
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	subjectRepo repository.SubjectRepository,
	deviceRepo repository.DeviceRepository,
	registrationRepo repository.RegistrationRepository,
) usecase.RegistrationUsecase {
	return &registrationService{
		subjectRepo:      subjectRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
	}
}

// Register binds a device to a subject, creating the device on first contact.
func (s *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (usecase.RegisterOutcome, error) {
	subject, err := s.subjectRepo.FindSubject(ctx, input.Kind, input.TypeIdentifier, input.SerialNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve subject: %w", err)
	}

	device, err := s.deviceRepo.FindOrCreateDevice(ctx, input.LibraryIdentifier, input.PushToken)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve device: %w", err)
	}

	_, err = s.registrationRepo.FindRegistration(ctx, device.ID, subject.ID)
	if err == nil {
		return usecase.RegistrationExists, nil
	}
	if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return 0, fmt.Errorf("failed to check registration: %w", err)
	}

	registration := &entity.Registration{
		DeviceID:  device.ID,
		SubjectID: subject.ID,
	}
	if err := s.registrationRepo.CreateRegistration(ctx, registration); err != nil {
		// A concurrent registration of the same pair is still a success.
		if errors.Is(err, repository.ErrDuplicateRegistration) {
			return usecase.RegistrationExists, nil
		}
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}

	return usecase.RegistrationCreated, nil
}

// SerialsForDevice lists serial numbers of registered subjects of the given type.
func (s *registrationService) SerialsForDevice(ctx context.Context, input usecase.SerialsInput) (*repository.SerialsResult, error) {
	result, err := s.registrationRepo.SerialsForDevice(ctx, input.LibraryIdentifier, input.Kind, input.TypeIdentifier, input.ModifiedSince)
	if err != nil {
		return nil, fmt.Errorf("failed to list serials: %w", err)
	}
	if len(result.SerialNumbers) == 0 {
		return nil, usecase.ErrNoRegistrations
	}
	return result, nil
}

// Unregister removes the registration binding the device to the subject.
func (s *registrationService) Unregister(ctx context.Context, input usecase.UnregisterInput) error {
	subject, err := s.subjectRepo.FindSubject(ctx, input.Kind, input.TypeIdentifier, input.SerialNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve subject: %w", err)
	}

	registration, err := s.registrationRepo.FindRegistrationForDevice(ctx, input.LibraryIdentifier, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to find registration: %w", err)
	}

	if err := s.registrationRepo.DeleteRegistration(ctx, registration.ID); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}
