package model

import "time"

// DeviceModel is the GORM-specific struct for the 'devices' table. Rows are
// unique on the (library_identifier, push_token) pair and hard-deleted when
// APNs reports the token permanently invalid.
type DeviceModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	LibraryIdentifier string `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_library_token,priority:1"`
	PushToken         string `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_library_token,priority:2"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
