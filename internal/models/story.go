// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Story represents a submitted entrepreneur story moving through the
// moderation pipeline: pending -> approved (optionally featured, optionally
// expiring).
type Story struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Profile string `gorm:"type:text" json:"profile"`
	Body    string `gorm:"type:text" json:"body"`
	// ImageRef points at an externally stored cover image. Empty is valid;
	// this service never touches image bytes.
	ImageRef string `json:"image_ref,omitempty"`
	Featured bool   `gorm:"not null;default:false" json:"featured"`
	Likes    int    `gorm:"not null;default:0" json:"likes"`
	Views    int    `gorm:"not null;default:0" json:"views"`
	Approved bool   `gorm:"not null;default:false;index" json:"approved"`
	// ExpiryDate is the last calendar day the story stays publicly visible.
	// nil means the story never expires.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
