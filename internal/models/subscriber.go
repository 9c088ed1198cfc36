package models

import (
	"time"
)

// Subscriber is a newsletter sign-up. Email is the deduplication key; a
// duplicate sign-up reports prior existence instead of erroring.
// Confirmed defaults to false; the confirmation flow lives outside this core.
type Subscriber struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribed_at"`
	Confirmed    bool      `gorm:"not null;default:false" json:"confirmed"`
}
