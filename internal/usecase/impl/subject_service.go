package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"
)

// authTokenBytes sizes the random authentication token (hex-encoded to
// twice this length).
const authTokenBytes = 16

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo repository.SubjectRepository) usecase.SubjectUsecase {
	return &subjectService{subjectRepo: subjectRepo}
}

// Create mints a subject with a fresh serial number and auth token.
func (s *subjectService) Create(ctx context.Context, kind entity.SubjectKind, typeIdentifier string) (*entity.Subject, error) {
	token, err := generateAuthToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	subject := &entity.Subject{
		ID:                  uuid.New(),
		Kind:                kind,
		TypeIdentifier:      typeIdentifier,
		AuthenticationToken: token,
	}
	if err := s.subjectRepo.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return subject, nil
}

// Touch advances the subject's update watermark to now.
func (s *subjectService) Touch(ctx context.Context, id uuid.UUID) error {
	if err := s.subjectRepo.TouchSubject(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("failed to touch subject: %w", err)
	}
	return nil
}

// Authenticate resolves the subject and verifies the token in constant time.
func (s *subjectService) Authenticate(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID, token string) (*entity.Subject, error) {
	subject, err := s.subjectRepo.FindSubject(ctx, kind, typeIdentifier, serialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(subject.AuthenticationToken), []byte(token)) != 1 {
		return nil, usecase.ErrInvalidAuthToken
	}
	return subject, nil
}

func generateAuthToken() (string, error) {
	buf := make([]byte, authTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
