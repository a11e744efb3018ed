package impl

import (
	"context"
	"testing"
	"time"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	mockRepo "walletpass/internal/mocks/repository"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service          usecase.RegistrationUsecase
	subjectRepo      *mockRepo.MockSubjectRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	registrationRepo *mockRepo.MockRegistrationRepository
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewRegistrationService(subjectRepo, deviceRepo, registrationRepo)

	return registrationServiceFixtures{
		service:          service,
		subjectRepo:      subjectRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
	}
}

func testSubject(kind entity.SubjectKind) *entity.Subject {
	return &entity.Subject{
		ID:                  uuid.New(),
		Kind:                kind,
		TypeIdentifier:      "pass.com.example.coupon",
		AuthenticationToken: "0123456789abcdef0123456789abcdef",
		UpdatedAt:           time.Now(),
	}
}

func TestRegistrationService_Register_NewRegistration(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	device := &entity.Device{ID: 7, LibraryIdentifier: "lib-1", PushToken: "token-1"}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "lib-1", "token-1").
		Return(device, nil)

	fx.registrationRepo.EXPECT().
		FindRegistration(ctx, device.ID, subject.ID).
		Return(nil, repository.ErrRegistrationNotFound)

	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, &entity.Registration{DeviceID: device.ID, SubjectID: subject.ID}).
		Return(nil)

	outcome, err := fx.service.Register(ctx, usecase.RegisterInput{
		LibraryIdentifier: "lib-1",
		PushToken:         "token-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationCreated, outcome)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	device := &entity.Device{ID: 7, LibraryIdentifier: "lib-1", PushToken: "token-1"}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "lib-1", "token-1").
		Return(device, nil)

	fx.registrationRepo.EXPECT().
		FindRegistration(ctx, device.ID, subject.ID).
		Return(&entity.Registration{ID: 1, DeviceID: device.ID, SubjectID: subject.ID}, nil)

	outcome, err := fx.service.Register(ctx, usecase.RegisterInput{
		LibraryIdentifier: "lib-1",
		PushToken:         "token-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationExists, outcome)
}

func TestRegistrationService_Register_DuplicateRace(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindOrder)
	device := &entity.Device{ID: 9, LibraryIdentifier: "lib-2", PushToken: "token-2"}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindOrder, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "lib-2", "token-2").
		Return(device, nil)

	fx.registrationRepo.EXPECT().
		FindRegistration(ctx, device.ID, subject.ID).
		Return(nil, repository.ErrRegistrationNotFound)

	// A concurrent request created the same pair between the check and the insert.
	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, &entity.Registration{DeviceID: device.ID, SubjectID: subject.ID}).
		Return(repository.ErrDuplicateRegistration)

	outcome, err := fx.service.Register(ctx, usecase.RegisterInput{
		LibraryIdentifier: "lib-2",
		PushToken:         "token-2",
		Kind:              entity.KindOrder,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationExists, outcome)
}

func TestRegistrationService_Register_UnknownSubject(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	serial := uuid.New()

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, "pass.com.example.coupon", serial).
		Return(nil, repository.ErrSubjectNotFound)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		LibraryIdentifier: "lib-1",
		PushToken:         "token-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    "pass.com.example.coupon",
		SerialNumber:      serial,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSubjectNotFound))
}

func TestRegistrationService_SerialsForDevice_ReturnsAllSerials(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	lastUpdated := time.Now().Truncate(time.Second)
	expected := &repository.SerialsResult{
		SerialNumbers: []string{uuid.NewString(), uuid.NewString()},
		LastUpdated:   lastUpdated,
	}

	fx.registrationRepo.EXPECT().
		SerialsForDevice(ctx, "lib-1", entity.KindPass, "pass.com.example.coupon", (*time.Time)(nil)).
		Return(expected, nil)

	result, err := fx.service.SerialsForDevice(ctx, usecase.SerialsInput{
		LibraryIdentifier: "lib-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    "pass.com.example.coupon",
	})
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestRegistrationService_SerialsForDevice_Empty(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	since := time.Now()

	fx.registrationRepo.EXPECT().
		SerialsForDevice(ctx, "lib-1", entity.KindPass, "pass.com.example.coupon", &since).
		Return(&repository.SerialsResult{}, nil)

	_, err := fx.service.SerialsForDevice(ctx, usecase.SerialsInput{
		LibraryIdentifier: "lib-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    "pass.com.example.coupon",
		ModifiedSince:     &since,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNoRegistrations))
}

func TestRegistrationService_Unregister_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	registration := &entity.Registration{ID: 42, DeviceID: 7, SubjectID: subject.ID}

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		FindRegistrationForDevice(ctx, "lib-1", subject.ID).
		Return(registration, nil)

	fx.registrationRepo.EXPECT().
		DeleteRegistration(ctx, registration.ID).
		Return(nil)

	err := fx.service.Unregister(ctx, usecase.UnregisterInput{
		LibraryIdentifier: "lib-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	require.NoError(t, err)
}

func TestRegistrationService_Unregister_NotRegistered(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.registrationRepo.EXPECT().
		FindRegistrationForDevice(ctx, "lib-1", subject.ID).
		Return(nil, repository.ErrRegistrationNotFound)

	err := fx.service.Unregister(ctx, usecase.UnregisterInput{
		LibraryIdentifier: "lib-1",
		Kind:              entity.KindPass,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrRegistrationNotFound))
}
