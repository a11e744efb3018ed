package entity

import "time"

// ErrorLog is an append-only record of a client-reported error message.
// It is a pure sink with no relationships to other entities.
type ErrorLog struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
