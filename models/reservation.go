package models

import "time"

// ReservationStatus represents all possible states of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCanceled  ReservationStatus = "canceled"
	ReservationRejected  ReservationStatus = "rejected"
)

type Reservation struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	UserID       uint              `json:"user_id" gorm:"not null;index"`
	User         User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID uint              `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant        `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Datetime     time.Time         `json:"datetime" gorm:"not null;index"`
	PartySize    int               `json:"party_size" gorm:"not null"`
	Status       ReservationStatus `json:"status" gorm:"not null;default:'confirmed'"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"` // always clamped to [1,5]
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
