package appointment

import (
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// ApplyVisit é o upsert do diretório de clientes: cliente existente ganha
// +1 visita e lastVisit atualizado, mantendo o nome já cadastrado; cliente
// novo nasce com a primeira visita contada.
func ApplyVisit(existing *models.Client, professionalID uint, name, phone string, now time.Time) models.Client {
	if existing != nil {
		c := *existing
		c.TotalBookings++
		c.LastVisit = now
		return c
	}

	return models.Client{
		ProfessionalID: professionalID,
		Name:           name,
		Phone:          phone,
		TotalBookings:  1,
		LastVisit:      now,
	}
}
