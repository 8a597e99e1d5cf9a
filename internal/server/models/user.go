// Package models contains the persistent entities of the board.
package models

import "time"

// User is a registered identity. PasswordHash is opaque and must never be
// returned to clients.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
