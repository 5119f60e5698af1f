package models

import "time"

// Cliente sem login, criado automaticamente no primeiro agendamento.
// Chave de unicidade: (professional_id, phone).
type Client struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_clients_professional_phone" json:"professional_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex:idx_clients_professional_phone" json:"phone"`

	TotalBookings int       `gorm:"default:0" json:"total_bookings"`
	LastVisit     time.Time `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
