package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	mockRepo "walletpass/internal/mocks/repository"
	mockSvc "walletpass/internal/mocks/service"
	"walletpass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	subjectRepo      *mockRepo.MockSubjectRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	registrationRepo *mockRepo.MockRegistrationRepository
	transport        *mockSvc.MockPushTransport
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	transport := mockSvc.NewMockPushTransport(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewNotificationService(subjectRepo, deviceRepo, registrationRepo, transport, logger)

	return notificationServiceFixtures{
		service:          service,
		subjectRepo:      subjectRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
		transport:        transport,
	}
}

func registrationWithDevice(id, deviceID int64, subject *entity.Subject, token string) *entity.Registration {
	return &entity.Registration{
		ID:        id,
		DeviceID:  deviceID,
		SubjectID: subject.ID,
		Device: &entity.Device{
			ID:                deviceID,
			LibraryIdentifier: "lib",
			PushToken:         token,
		},
	}
}

func TestNotificationService_Notify_FansOutToAllDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	registrations := []*entity.Registration{
		registrationWithDevice(1, 10, subject, "token-a"),
		registrationWithDevice(2, 11, subject, "token-b"),
	}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		RegistrationsForSubject(ctx, subject.ID).
		Return(registrations, nil)

	fx.transport.EXPECT().Push(ctx, "token-a", subject.TypeIdentifier).Return(nil)
	fx.transport.EXPECT().Push(ctx, "token-b", subject.TypeIdentifier).Return(nil)

	err := fx.service.Notify(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID)
	require.NoError(t, err)
}

func TestNotificationService_Notify_CleansUpInvalidToken(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	stale := registrationWithDevice(1, 10, subject, "stale-token")
	healthy := registrationWithDevice(2, 11, subject, "token-b")

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		RegistrationsForSubject(ctx, subject.ID).
		Return([]*entity.Registration{stale, healthy}, nil)

	fx.transport.EXPECT().
		Push(ctx, "stale-token", subject.TypeIdentifier).
		Return(service.ErrPushTokenInvalid)
	fx.transport.EXPECT().
		Push(ctx, "token-b", subject.TypeIdentifier).
		Return(nil)

	fx.deviceRepo.EXPECT().DeleteDevice(ctx, stale.DeviceID).Return(nil)
	// The registration cascades away with the device; the stale row is gone.
	fx.registrationRepo.EXPECT().
		DeleteRegistration(ctx, stale.ID).
		Return(repository.ErrRegistrationNotFound)

	err := fx.service.Notify(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID)
	require.NoError(t, err)
}

func TestNotificationService_Notify_TransportErrorDoesNotStopFanOut(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	failing := registrationWithDevice(1, 10, subject, "token-a")
	healthy := registrationWithDevice(2, 11, subject, "token-b")
	transportErr := errors.New("gateway timeout")

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		RegistrationsForSubject(ctx, subject.ID).
		Return([]*entity.Registration{failing, healthy}, nil)

	fx.transport.EXPECT().
		Push(ctx, "token-a", subject.TypeIdentifier).
		Return(transportErr)
	fx.transport.EXPECT().
		Push(ctx, "token-b", subject.TypeIdentifier).
		Return(nil)

	err := fx.service.Notify(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, transportErr))
}

func TestNotificationService_Notify_ZeroDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		RegistrationsForSubject(ctx, subject.ID).
		Return([]*entity.Registration{}, nil)

	err := fx.service.Notify(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID)
	require.NoError(t, err)
}

func TestNotificationService_Tokens_ListsWithoutSending(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindOrder)
	registrations := []*entity.Registration{
		registrationWithDevice(1, 10, subject, "token-a"),
		registrationWithDevice(2, 11, subject, "token-b"),
	}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindOrder, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		RegistrationsForSubject(ctx, subject.ID).
		Return(registrations, nil)

	tokens, err := fx.service.Tokens(ctx, entity.KindOrder, subject.TypeIdentifier, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-a", "token-b"}, tokens)
}
