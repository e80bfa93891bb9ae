package models

import "time"

// RestaurantStatus represents the approval state of a restaurant listing
type RestaurantStatus string

const (
	StatusPending  RestaurantStatus = "pending"
	StatusApproved RestaurantStatus = "approved"
	StatusRejected RestaurantStatus = "rejected"
)

type Restaurant struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	OwnerID     uint             `json:"owner_id" gorm:"not null;index"`
	Owner       User             `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string           `json:"name" gorm:"not null"`
	Address     string           `json:"address"`
	Cuisine     string           `json:"cuisine"`
	Description string           `json:"description"`
	Status      RestaurantStatus `json:"status" gorm:"not null;default:'pending';index"`
	AdminNotes  string           `json:"admin_notes,omitempty"`
	Images      []Image          `json:"images,omitempty" gorm:"foreignKey:RestaurantID"`
	MenuItems   []MenuItem       `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	ImageID      *uint     `json:"image_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
