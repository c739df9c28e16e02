package models

import (
	"time"
)

// Administrator is a moderation account. One default administrator is seeded
// at first run; more can be added through cmd/admin.
type Administrator struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
