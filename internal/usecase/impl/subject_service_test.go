package impl

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	mockRepo "walletpass/internal/mocks/repository"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// subjectServiceFixtures holds all test dependencies for subject service tests.
type subjectServiceFixtures struct {
	service     usecase.SubjectUsecase
	subjectRepo *mockRepo.MockSubjectRepository
}

func createTestSubjectService(t *testing.T) subjectServiceFixtures {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)
	service := NewSubjectService(subjectRepo)

	return subjectServiceFixtures{
		service:     service,
		subjectRepo: subjectRepo,
	}
}

func TestSubjectService_Create_MintsSerialAndToken(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()
	var created *entity.Subject

	fx.subjectRepo.EXPECT().
		CreateSubject(ctx, mock.AnythingOfType("*entity.Subject")).
		Run(func(ctx context.Context, subject *entity.Subject) {
			created = subject
		}).
		Return(nil)

	subject, err := fx.service.Create(ctx, entity.KindPass, "pass.com.example.coupon")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, subject)

	assert.NotEqual(t, uuid.Nil, subject.ID)
	assert.Equal(t, entity.KindPass, subject.Kind)
	assert.Equal(t, "pass.com.example.coupon", subject.TypeIdentifier)

	// The token is 16 random bytes, hex encoded.
	raw, err := hex.DecodeString(subject.AuthenticationToken)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestSubjectService_Create_TokensAreUnique(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()

	fx.subjectRepo.EXPECT().
		CreateSubject(ctx, mock.AnythingOfType("*entity.Subject")).
		Return(nil).
		Twice()

	first, err := fx.service.Create(ctx, entity.KindOrder, "order.com.example.shop")
	require.NoError(t, err)
	second, err := fx.service.Create(ctx, entity.KindOrder, "order.com.example.shop")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.AuthenticationToken, second.AuthenticationToken)
}

func TestSubjectService_Touch_AdvancesWatermark(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.subjectRepo.EXPECT().
		TouchSubject(ctx, id, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, id uuid.UUID, ts time.Time) {
			assert.WithinDuration(t, time.Now(), ts, time.Second)
		}).
		Return(nil)

	require.NoError(t, fx.service.Touch(ctx, id))
}

func TestSubjectService_Authenticate_Success(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	got, err := fx.service.Authenticate(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, subject.AuthenticationToken)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestSubjectService_Authenticate_WrongToken(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	_, err := fx.service.Authenticate(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, "wrong-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrInvalidAuthToken))
}

func TestSubjectService_Authenticate_UnknownSubject(t *testing.T) {
	fx := createTestSubjectService(t)

	ctx := context.Background()
	serial := uuid.New()

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, "pass.com.example.coupon", serial).
		Return(nil, repository.ErrSubjectNotFound)

	_, err := fx.service.Authenticate(ctx, entity.KindPass, "pass.com.example.coupon", serial, "any")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSubjectNotFound))
}
