package impl

import (
	"context"
	"fmt"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	"walletpass/internal/usecase"
)

type personalizationService struct {
	subjectRepo repository.SubjectRepository
	signer      service.Signer
}

// NewPersonalizationService creates a new personalization service instance
func NewPersonalizationService(
	subjectRepo repository.SubjectRepository,
	signer service.Signer,
) usecase.PersonalizationUsecase {
	return &personalizationService{
		subjectRepo: subjectRepo,
		signer:      signer,
	}
}

// Personalize stores the enrollment and returns a detached signature over
// the raw personalization token.
func (s *personalizationService) Personalize(ctx context.Context, input usecase.PersonalizationInput) ([]byte, error) {
	subject, err := s.subjectRepo.FindSubject(ctx, entity.KindPass, input.TypeIdentifier, input.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	personalization := &entity.UserPersonalization{
		SubjectID:            subject.ID,
		PersonalizationToken: input.PersonalizationToken,
		FullName:             input.FullName,
		GivenName:            input.GivenName,
		FamilyName:           input.FamilyName,
		EmailAddress:         input.EmailAddress,
		PhoneNumber:          input.PhoneNumber,
		PostalCode:           input.PostalCode,
		RequiredFields:       input.RequiredFields,
	}
	if err := s.subjectRepo.AttachPersonalization(ctx, personalization); err != nil {
		return nil, fmt.Errorf("failed to store personalization: %w", err)
	}

	signature, err := s.signer.Sign(ctx, []byte(input.PersonalizationToken))
	if err != nil {
		return nil, fmt.Errorf("failed to sign personalization token: %w", err)
	}
	return signature, nil
}
