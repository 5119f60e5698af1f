package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	BusinessName string `gorm:"size:100;not null" json:"business_name"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone        string `gorm:"size:20" json:"phone"`

	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
