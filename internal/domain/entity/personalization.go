package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPersonalization holds the user-identifying fields a Wallet client
// submits through the personalize flow. At most one record exists per
// subject; its presence marks the flow as completed.
type UserPersonalization struct {
	ID                    int64     `json:"id"`
	SubjectID             uuid.UUID `json:"subject_id"`
	PersonalizationToken  string    `json:"personalization_token"` // Signed and returned to the client as the flow receipt.
	FullName              string    `json:"full_name,omitempty"`
	GivenName             string    `json:"given_name,omitempty"`
	FamilyName            string    `json:"family_name,omitempty"`
	EmailAddress          string    `json:"email_address,omitempty"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	PostalCode            string    `json:"postal_code,omitempty"`
	RequiredFields        string    `json:"-"` // Raw requiredPersonalizationInfo JSON as submitted.
	CreatedAt             time.Time `json:"created_at"`
}
