package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"walletpass/internal/bundle"
	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	"walletpass/internal/usecase"
)

type bundleService struct {
	subjectRepo repository.SubjectRepository
	delegate    service.WalletDelegate
	packager    *bundle.Packager
}

// NewBundleService creates a new bundle service instance
func NewBundleService(
	subjectRepo repository.SubjectRepository,
	delegate service.WalletDelegate,
	packager *bundle.Packager,
) usecase.BundleUsecase {
	return &bundleService{
		subjectRepo: subjectRepo,
		delegate:    delegate,
		packager:    packager,
	}
}

// SubjectBundle builds the signed archive for one subject, honoring the
// caller's conditional timestamp.
func (s *bundleService) SubjectBundle(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serialNumber uuid.UUID, ifModifiedSince *time.Time) (*usecase.SubjectBundle, error) {
	subject, err := s.subjectRepo.FindSubject(ctx, kind, typeIdentifier, serialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	// HTTP dates carry second precision, so the watermark is compared
	// truncated. On equality nothing changed and packaging is skipped.
	if ifModifiedSince != nil && !subject.UpdatedAt.Truncate(time.Second).After(*ifModifiedSince) {
		return nil, usecase.ErrNotModified
	}

	input, err := s.packageInput(ctx, subject)
	if err != nil {
		return nil, err
	}

	archive, err := s.packager.Package(ctx, *input)
	if err != nil {
		return nil, fmt.Errorf("failed to package subject: %w", err)
	}

	return &usecase.SubjectBundle{
		Archive:      archive,
		MIMEType:     kind.MIMEType(),
		LastModified: subject.UpdatedAt,
	}, nil
}

// SubjectBundleSet builds a set archive of signed pass bundles.
func (s *bundleService) SubjectBundleSet(ctx context.Context, typeIdentifier string, serialNumbers []uuid.UUID) ([]byte, error) {
	if len(serialNumbers) < bundle.SetMinSize || len(serialNumbers) > bundle.SetMaxSize {
		return nil, bundle.ErrSetSize
	}

	inputs := make([]bundle.PackageInput, 0, len(serialNumbers))
	for _, serialNumber := range serialNumbers {
		subject, err := s.subjectRepo.FindSubject(ctx, entity.KindPass, typeIdentifier, serialNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subject %s: %w", serialNumber, err)
		}

		input, err := s.packageInput(ctx, subject)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}

	archive, err := s.packager.PackageSet(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to package bundle set: %w", err)
	}
	return archive, nil
}

func (s *bundleService) packageInput(ctx context.Context, subject *entity.Subject) (*bundle.PackageInput, error) {
	templateDir, err := s.delegate.TemplateDir(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template dir: %w", err)
	}

	content, err := s.delegate.Encode(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subject content: %w", err)
	}

	// personalization.json ships only while the personalize flow is still
	// pending; once an enrollment exists the file is omitted.
	var personalization []byte
	if subject.Kind == entity.KindPass && subject.Personalization == nil {
		personalization, err = s.delegate.PersonalizationContent(ctx, subject)
		if err != nil {
			return nil, fmt.Errorf("failed to encode personalization content: %w", err)
		}
	}

	return &bundle.PackageInput{
		Kind:            subject.Kind,
		SerialNumber:    subject.SerialNumber(),
		Content:         content,
		TemplateDir:     templateDir,
		Personalization: personalization,
	}, nil
}
