// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an author account in the DevLog application.
// IDs are opaque text keys (UUID strings) to match the content schema.
type User struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the identity projection returned by auth endpoints.
// It deliberately carries no digest or timestamps.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Public returns the outward-facing projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Email: u.Email}
}
