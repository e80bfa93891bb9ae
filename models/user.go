package models

import (
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the closed set of roles. Role strings
// are never compared against ad-hoc literals anywhere else.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               uint         `json:"id" gorm:"primaryKey"`
	FirstName        string       `json:"first_name" gorm:"not null"`
	LastName         string       `json:"last_name"`
	Email            string       `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string       `json:"-"` // empty for external-identity accounts
	Role             Role         `json:"role" gorm:"not null;default:'customer'"`
	Verified         bool         `json:"verified" gorm:"default:false"`
	Provider         string       `json:"provider,omitempty"`
	ProviderID       string       `json:"-"`
	SavedRestaurants []Restaurant `json:"saved_restaurants,omitempty" gorm:"many2many:saved_restaurants"`
	LastLogin        *time.Time   `json:"last_login,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
