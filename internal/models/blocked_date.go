package models

import "time"

// Data bloqueada (feriado, folga). Bloqueio sempre de dia inteiro.
type BlockedDate struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
