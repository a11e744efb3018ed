package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'registrations'
// table, joining one device to one subject. The unique index is a backstop;
// the service absorbs duplicates with a lookup before creating.
type RegistrationModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	DeviceID  int64         `gorm:"not null;uniqueIndex:idx_registrations_device_subject,priority:1"`
	SubjectID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_device_subject,priority:2"`
	Device    *DeviceModel  `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	Subject   *SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}
