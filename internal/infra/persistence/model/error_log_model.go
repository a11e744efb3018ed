package model

import "time"

// ErrorLogModel is the GORM-specific struct for the 'error_logs' table.
type ErrorLogModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ErrorLogModel) TableName() string {
	return "error_logs"
}
