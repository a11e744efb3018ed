package repository

import (
	"context"

	"walletpass/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindOrCreateDevice returns the device identified by the
	// (libraryIdentifier, pushToken) pair, creating it when absent.
	FindOrCreateDevice(ctx context.Context, libraryIdentifier, pushToken string) (*entity.Device, error)

	// DeleteDevice removes a device by its ID. Registrations referencing the
	// device cascade away with it.
	DeleteDevice(ctx context.Context, id int64) error
}
