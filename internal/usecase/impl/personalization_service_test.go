package impl

import (
	"context"
	"testing"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	mockRepo "walletpass/internal/mocks/repository"
	mockSvc "walletpass/internal/mocks/service"
	"walletpass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// personalizationServiceFixtures holds all test dependencies for personalization service tests.
type personalizationServiceFixtures struct {
	service     usecase.PersonalizationUsecase
	subjectRepo *mockRepo.MockSubjectRepository
	signer      *mockSvc.MockSigner
}

func createTestPersonalizationService(t *testing.T) personalizationServiceFixtures {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)
	signer := mockSvc.NewMockSigner(t)
	service := NewPersonalizationService(subjectRepo, signer)

	return personalizationServiceFixtures{
		service:     service,
		subjectRepo: subjectRepo,
		signer:      signer,
	}
}

func TestPersonalizationService_Personalize_SignsRawToken(t *testing.T) {
	fx := createTestPersonalizationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	signature := []byte("detached signature")
	var stored *entity.UserPersonalization

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.subjectRepo.EXPECT().
		AttachPersonalization(ctx, mock.AnythingOfType("*entity.UserPersonalization")).
		Run(func(ctx context.Context, personalization *entity.UserPersonalization) {
			stored = personalization
		}).
		Return(nil)

	fx.signer.EXPECT().
		Sign(ctx, []byte("enrollment-token")).
		Return(signature, nil)

	got, err := fx.service.Personalize(ctx, usecase.PersonalizationInput{
		TypeIdentifier:       subject.TypeIdentifier,
		SerialNumber:         subject.ID,
		PersonalizationToken: "enrollment-token",
		FullName:             "Taylor Doe",
		EmailAddress:         "taylor@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, signature, got)

	require.NotNil(t, stored)
	assert.Equal(t, subject.ID, stored.SubjectID)
	assert.Equal(t, "enrollment-token", stored.PersonalizationToken)
	assert.Equal(t, "Taylor Doe", stored.FullName)
	assert.Equal(t, "taylor@example.com", stored.EmailAddress)
}

func TestPersonalizationService_Personalize_AlreadyPersonalized(t *testing.T) {
	fx := createTestPersonalizationService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.subjectRepo.EXPECT().
		AttachPersonalization(ctx, mock.AnythingOfType("*entity.UserPersonalization")).
		Return(repository.ErrPersonalizationExists)

	_, err := fx.service.Personalize(ctx, usecase.PersonalizationInput{
		TypeIdentifier:       subject.TypeIdentifier,
		SerialNumber:         subject.ID,
		PersonalizationToken: "enrollment-token",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrPersonalizationExists))
}
