package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	"walletpass/internal/usecase"
)

type notificationService struct {
	subjectRepo      repository.SubjectRepository
	deviceRepo       repository.DeviceRepository
	registrationRepo repository.RegistrationRepository
	transport        service.PushTransport
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	subjectRepo repository.SubjectRepository,
	deviceRepo repository.DeviceRepository,
	registrationRepo repository.RegistrationRepository,
	transport service.PushTransport,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		subjectRepo:      subjectRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
		transport:        transport,
		logger:           logger,
	}
}

// Notify wakes every device registered for the subject.
func (s *notificationService) Notify(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID) error {
	subject, err := s.subjectRepo.FindSubject(ctx, kind, typeIdentifier, serialNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve subject: %w", err)
	}

	// Snapshot the registrations before fanning out so that cleanup of
	// invalid tokens does not disturb the iteration.
	registrations, err := s.registrationRepo.RegistrationsForSubject(ctx, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to list registrations: %w", err)
	}

	var sendErrs []error
	for _, registration := range registrations {
		if registration.Device == nil {
			continue
		}

		err := s.transport.Push(ctx, registration.Device.PushToken, subject.TypeIdentifier)
		if err == nil {
			continue
		}

		if errors.Is(err, service.ErrPushTokenInvalid) {
			s.cleanupInvalidDevice(ctx, registration)
			continue
		}

		sendErrs = append(sendErrs, fmt.Errorf("push to device %d: %w", registration.DeviceID, err))
	}

	return errors.Join(sendErrs...)
}

// Tokens lists the push tokens Notify would target, without sending.
func (s *notificationService) Tokens(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID) ([]string, error) {
	subject, err := s.subjectRepo.FindSubject(ctx, kind, typeIdentifier, serialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	registrations, err := s.registrationRepo.RegistrationsForSubject(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	tokens := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		if registration.Device == nil {
			continue
		}
		tokens = append(tokens, registration.Device.PushToken)
	}
	return tokens, nil
}

// cleanupInvalidDevice removes a device whose token the gateway rejected,
// along with its registrations. Cleanup failures are logged, not raised;
// the device will be retried and cleaned up on the next notification.
func (s *notificationService) cleanupInvalidDevice(ctx context.Context, registration *entity.Registration) {
	s.logger.Info("removing device with invalid push token",
		slog.Int64("deviceID", registration.DeviceID))

	if err := s.deviceRepo.DeleteDevice(ctx, registration.DeviceID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		s.logger.Warn("failed to delete device with invalid token",
			slog.Int64("deviceID", registration.DeviceID),
			slog.Any("error", err))
		return
	}

	// The device delete cascades to its registrations; tolerate the row
	// already being gone.
	err := s.registrationRepo.DeleteRegistration(ctx, registration.ID)
	if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
		s.logger.Warn("failed to delete registration for invalid token",
			slog.Int64("registrationID", registration.ID),
			slog.Any("error", err))
	}
}
