// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubjectKind distinguishes the two wallet item flavors served by the protocol.
type SubjectKind string

const (
	// KindPass is a Wallet pass (.pkpass bundle, SHA-1 manifest digests).
	KindPass SubjectKind = "pass"
	// KindOrder is a Wallet order (.order bundle, SHA-256 manifest digests).
	KindOrder SubjectKind = "order"
)

// Valid reports whether the kind is one of the supported subject kinds.
func (k SubjectKind) Valid() bool {
	return k == KindPass || k == KindOrder
}

// ContentFilename is the protocol-mandated name of the business JSON file
// inside a bundle of this kind.
func (k SubjectKind) ContentFilename() string {
	if k == KindOrder {
		return "order.json"
	}

	return "pass.json"
}

// MIMEType returns the content type a single bundle of this kind is served with.
func (k SubjectKind) MIMEType() string {
	if k == KindOrder {
		return "application/vnd.apple.order"
	}

	return "application/vnd.apple.pkpass"
}

// Subject represents a single Wallet item (pass or order) managed by the
// web service. The serial number presented to clients is the string form of ID.
type Subject struct {
	ID                  uuid.UUID            `json:"id"`                   // Serial number of the pass or order.
	Kind                SubjectKind          `json:"kind"`                 // Pass or order.
	TypeIdentifier      string               `json:"type_identifier"`      // Reverse-DNS type identifier, e.g. "pass.com.example.coupon".
	AuthenticationToken string               `json:"authentication_token"` // Server-generated bearer credential embedded in the bundle.
	Personalization     *UserPersonalization `json:"personalization,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"` // Monotonically non-decreasing change watermark.
}

// SerialNumber returns the client-facing serial number string.
func (s *Subject) SerialNumber() string {
	return s.ID.String()
}
