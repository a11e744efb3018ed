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

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// CreateRegistration persists a new device-subject registration.
func (repo *registrationRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRegistration
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubjectNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration")
	}

	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt

	return nil
}

// FindRegistration retrieves the registration joining a device and a subject.
func (repo *registrationRepository) FindRegistration(ctx context.Context, deviceID int64, subjectID uuid.UUID) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND subject_id = ?", deviceID, subjectID).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	return toRegistrationDomain(&registrationM), nil
}

// FindRegistrationForDevice locates the registration joining a device's
// library identifier and a subject, for the unregister flow.
func (repo *registrationRepository) FindRegistrationForDevice(ctx context.Context, libraryIdentifier string, subjectID uuid.UUID) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Select("registrations.*").
		Joins("JOIN devices ON devices.id = registrations.device_id").
		Where("devices.library_identifier = ? AND registrations.subject_id = ?", libraryIdentifier, subjectID).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration for device")
	}

	return toRegistrationDomain(&registrationM), nil
}

// serialRow is the scan target for the registrations-for-device query.
type serialRow struct {
	SerialNumber uuid.UUID
	UpdatedAt    time.Time
}

// SerialsForDevice lists the subjects registered to a device for one kind
// and type identifier. When modifiedSince is set and no subject changed
// after it, the result is empty; when at least one changed, the full set of
// registered serials is returned, the protocol's list contract.
func (repo *registrationRepository) SerialsForDevice(ctx context.Context, libraryIdentifier string, kind entity.SubjectKind, typeIdentifier string, modifiedSince *time.Time) (*repository.SerialsResult, error) {
	var rows []serialRow

	if err := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Select("subjects.id AS serial_number, subjects.updated_at").
		Joins("JOIN devices ON devices.id = registrations.device_id").
		Joins("JOIN subjects ON subjects.id = registrations.subject_id").
		Where("devices.library_identifier = ?", libraryIdentifier).
		Where("subjects.kind = ? AND subjects.type_identifier = ?", kind, typeIdentifier).
		Order("subjects.updated_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list serials for device")
	}

	if len(rows) == 0 {
		return &repository.SerialsResult{}, nil
	}

	lastUpdated := rows[len(rows)-1].UpdatedAt
	if !watermarkAdvanced(lastUpdated, modifiedSince) {
		// Registered, but nothing newer than the client's watermark.
		return &repository.SerialsResult{}, nil
	}

	serials := make([]string, 0, len(rows))
	for _, row := range rows {
		serials = append(serials, row.SerialNumber.String())
	}

	return &repository.SerialsResult{
		SerialNumbers: serials,
		LastUpdated:   lastUpdated,
	}, nil
}

// watermarkAdvanced reports whether the stored watermark is newer than the
// client's echoed one. Clients echo the watermark in whole seconds, so the
// stored timestamp is truncated before comparing or the echo never matches
// and the device re-fetches the full list on every poll.
func watermarkAdvanced(lastUpdated time.Time, modifiedSince *time.Time) bool {
	if modifiedSince == nil {
		return true
	}

	return lastUpdated.Truncate(time.Second).After(*modifiedSince)
}

// RegistrationsForSubject retrieves all registrations for a subject with
// devices eagerly loaded, one round trip for the push fan-out snapshot.
func (repo *registrationRepository) RegistrationsForSubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Registration, error) {
	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Preload("Device").
		Where("subject_id = ?", subjectID).
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations for subject")
	}

	registrations := make([]*entity.Registration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// DeleteRegistration removes a registration by its ID.
func (repo *registrationRepository) DeleteRegistration(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RegistrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRegistrationDomain converts a GORM RegistrationModel to a domain Registration entity.
func toRegistrationDomain(data *model.RegistrationModel) *entity.Registration {
	if data == nil {
		return nil
	}

	return &entity.Registration{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		SubjectID: data.SubjectID,
		Device:    toDeviceDomain(data.Device),
		Subject:   toSubjectDomain(data.Subject),
		CreatedAt: data.CreatedAt,
	}
}

// fromRegistrationDomain converts a domain Registration entity to a GORM RegistrationModel.
func fromRegistrationDomain(data *entity.Registration) *model.RegistrationModel {
	if data == nil {
		return nil
	}

	return &model.RegistrationModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		SubjectID: data.SubjectID,
		CreatedAt: data.CreatedAt,
	}
}
