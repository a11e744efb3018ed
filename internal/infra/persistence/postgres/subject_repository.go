// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subjectRepository implements the repository.SubjectRepository interface.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository is the constructor for subjectRepository.
func NewSubjectRepository(db *gorm.DB) repository.SubjectRepository {
	return &subjectRepository{
		db: db,
	}
}

// CreateSubject persists a new subject.
func (repo *subjectRepository) CreateSubject(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)

	if err := repo.db.WithContext(ctx).Create(subjectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubject
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subject")
	}

	subject.CreatedAt = subjectM.CreatedAt
	subject.UpdatedAt = subjectM.UpdatedAt

	return nil
}

// FindSubject retrieves a subject by kind, type identifier and serial number,
// with its personalization record eagerly loaded.
func (repo *subjectRepository) FindSubject(ctx context.Context, kind entity.SubjectKind, typeIdentifier string, serial uuid.UUID) (*entity.Subject, error) {
	var subjectM model.SubjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Personalization").
		Where("id = ? AND kind = ? AND type_identifier = ?", serial, kind, typeIdentifier).
		First(&subjectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject")
	}

	return toSubjectDomain(&subjectM), nil
}

// TouchSubject bumps the updated_at watermark to at least t. GREATEST keeps
// the watermark monotone regardless of caller clock skew.
func (repo *subjectRepository) TouchSubject(ctx context.Context, id uuid.UUID, t time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubjectModel{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", gorm.Expr("GREATEST(updated_at, ?)", t))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch subject")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// DeleteSubject removes a subject; registrations cascade away in the database.
func (repo *subjectRepository) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubjectModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subject")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// AttachPersonalization stores the personalization record for a subject.
func (repo *subjectRepository) AttachPersonalization(ctx context.Context, personalization *entity.UserPersonalization) error {
	personalizationM := fromPersonalizationDomain(personalization)

	if err := repo.db.WithContext(ctx).Create(personalizationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPersonalizationExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubjectNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach personalization")
	}

	personalization.ID = personalizationM.ID
	personalization.CreatedAt = personalizationM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toSubjectDomain converts a GORM SubjectModel to a domain Subject entity.
func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	if data == nil {
		return nil
	}

	return &entity.Subject{
		ID:                  data.ID,
		Kind:                entity.SubjectKind(data.Kind),
		TypeIdentifier:      data.TypeIdentifier,
		AuthenticationToken: data.AuthenticationToken,
		Personalization:     toPersonalizationDomain(data.Personalization),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromSubjectDomain converts a domain Subject entity to a GORM SubjectModel.
func fromSubjectDomain(data *entity.Subject) *model.SubjectModel {
	if data == nil {
		return nil
	}

	return &model.SubjectModel{
		ID:                  data.ID,
		Kind:                string(data.Kind),
		TypeIdentifier:      data.TypeIdentifier,
		AuthenticationToken: data.AuthenticationToken,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// toPersonalizationDomain converts a GORM UserPersonalizationModel to a domain entity.
func toPersonalizationDomain(data *model.UserPersonalizationModel) *entity.UserPersonalization {
	if data == nil {
		return nil
	}

	return &entity.UserPersonalization{
		ID:                   data.ID,
		SubjectID:            data.SubjectID,
		PersonalizationToken: data.PersonalizationToken,
		FullName:             data.FullName,
		GivenName:            data.GivenName,
		FamilyName:           data.FamilyName,
		EmailAddress:         data.EmailAddress,
		PhoneNumber:          data.PhoneNumber,
		PostalCode:           data.PostalCode,
		RequiredFields:       data.RequiredFields,
		CreatedAt:            data.CreatedAt,
	}
}

// fromPersonalizationDomain converts a domain entity to a GORM UserPersonalizationModel.
func fromPersonalizationDomain(data *entity.UserPersonalization) *model.UserPersonalizationModel {
	if data == nil {
		return nil
	}

	return &model.UserPersonalizationModel{
		ID:                   data.ID,
		SubjectID:            data.SubjectID,
		PersonalizationToken: data.PersonalizationToken,
		FullName:             data.FullName,
		GivenName:            data.GivenName,
		FamilyName:           data.FamilyName,
		EmailAddress:         data.EmailAddress,
		PhoneNumber:          data.PhoneNumber,
		PostalCode:           data.PostalCode,
		RequiredFields:       data.RequiredFields,
		CreatedAt:            data.CreatedAt,
	}
}
