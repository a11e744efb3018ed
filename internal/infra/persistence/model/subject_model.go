// Package model holds the GORM-specific structs backing the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel is the GORM-specific struct for the 'subjects' table. A row
// is one pass or order; the UUID primary key doubles as the serial number.
type SubjectModel struct {
	ID                  uuid.UUID                 `gorm:"type:uuid;primary_key"`
	Kind                string                    `gorm:"type:varchar(16);not null;index:idx_subjects_kind_type,priority:1"`
	TypeIdentifier      string                    `gorm:"type:varchar(255);not null;index:idx_subjects_kind_type,priority:2"`
	AuthenticationToken string                    `gorm:"type:varchar(64);not null"`
	Personalization     *UserPersonalizationModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time
	UpdatedAt           time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}
