package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PersonalizationInput carries the enrollment details a device submits
// when completing pass personalization.
type PersonalizationInput struct {
	TypeIdentifier       string
	SerialNumber         uuid.UUID
	PersonalizationToken string
	FullName             string
	GivenName            string
	FamilyName           string
	EmailAddress         string
	PhoneNumber          string
	PostalCode           string
	RequiredFields       string // Raw requiredPersonalizationInfo JSON as submitted.
}

// PersonalizationUsecase records personalization enrollments for passes
// that require them.
type PersonalizationUsecase interface {
	// Personalize stores the enrollment against the pass and returns a
	// detached signature over the raw personalization token, which the
	// device uses to verify the enrollment was accepted.
	Personalize(ctx context.Context, input PersonalizationInput) ([]byte, error)
}
