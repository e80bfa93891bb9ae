package models

import "time"

// Image is an opaque blob owned by the store, referenced by id from
// restaurants and menu items.
type Image struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	Data         []byte    `json:"-" gorm:"type:blob"`
	UploaderID   uint      `json:"uploader_id" gorm:"not null;index"`
	RestaurantID *uint     `json:"restaurant_id,omitempty" gorm:"index"`
	MenuItemID   *uint     `json:"menu_item_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
