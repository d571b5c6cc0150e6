package models

import "time"

// Theme is a user-saved content theme. Data holds the serialized theme
// definition; the static preset registry lives in app/themes.
type Theme struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Data      string    `gorm:"not null" json:"data"`
	OwnerID   *string   `gorm:"size:36;index" json:"owner_id"`
	IsPublic  bool      `gorm:"default:false" json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}
