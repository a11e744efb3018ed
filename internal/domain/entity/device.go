package entity

import "time"

// Device represents a Wallet client registered for push notifications.
// A device is created lazily on its first registration and removed when APNs
// reports its push token permanently invalid.
type Device struct {
	ID                int64     `json:"id"`
	LibraryIdentifier string    `json:"library_identifier"` // Client-supplied device library identifier.
	PushToken         string    `json:"push_token"`         // APNs device token, unique together with LibraryIdentifier.
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
