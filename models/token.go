package models

import "time"

// RevokedToken is the blocklist entry for a logged-out token. The jti is
// authoritative: a listed token is rejected even while its own signature
// and expiry are still valid. Rows past ExpiresAt are purged lazily on
// lookup, so the table never outgrows the live token population.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Jti       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
