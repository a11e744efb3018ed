package postgres

import (
	"context"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindOrCreateDevice returns the device for the (libraryIdentifier,
// pushToken) pair, creating it lazily on first registration. A concurrent
// create racing on the unique index resolves by re-reading.
func (repo *deviceRepository) FindOrCreateDevice(ctx context.Context, libraryIdentifier, pushToken string) (*entity.Device, error) {
	device, err := repo.findDevice(ctx, libraryIdentifier, pushToken)
	if err == nil {
		return device, nil
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, err
	}

	deviceM := &model.DeviceModel{
		LibraryIdentifier: libraryIdentifier,
		PushToken:         pushToken,
	}

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the race against a concurrent registration; the row exists now.
			return repo.findDevice(ctx, libraryIdentifier, pushToken)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return toDeviceDomain(deviceM), nil
}

// DeleteDevice removes a device by its ID; registrations cascade away.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) findDevice(ctx context.Context, libraryIdentifier, pushToken string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("library_identifier = ? AND push_token = ?", libraryIdentifier, pushToken).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                data.ID,
		LibraryIdentifier: data.LibraryIdentifier,
		PushToken:         data.PushToken,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
