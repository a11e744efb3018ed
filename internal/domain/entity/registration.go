package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration joins exactly one Device to one Subject and means "wake this
// device when this subject changes". The (device, subject) pair is logically
// unique; duplicate registration requests are absorbed, not duplicated.
type Registration struct {
	ID        int64     `json:"id"`
	DeviceID  int64     `json:"device_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	Device    *Device   `json:"device,omitempty"`  // Populated by eager-loading queries.
	Subject   *Subject  `json:"subject,omitempty"` // Populated by eager-loading queries.
	CreatedAt time.Time `json:"created_at"`
}
