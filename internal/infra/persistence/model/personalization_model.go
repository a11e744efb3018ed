package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPersonalizationModel is the GORM-specific struct for the
// 'user_personalizations' table; at most one row exists per subject.
type UserPersonalizationModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	SubjectID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PersonalizationToken string    `gorm:"type:varchar(255);not null"`
	FullName             string    `gorm:"type:varchar(255)"`
	GivenName            string    `gorm:"type:varchar(255)"`
	FamilyName           string    `gorm:"type:varchar(255)"`
	EmailAddress         string    `gorm:"type:varchar(255)"`
	PhoneNumber          string    `gorm:"type:varchar(64)"`
	PostalCode           string    `gorm:"type:varchar(32)"`
	RequiredFields       string    `gorm:"type:text"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPersonalizationModel) TableName() string {
	return "user_personalizations"
}
