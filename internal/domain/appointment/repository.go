package appointment

import (
	"context"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalBySlug(
		ctx context.Context,
		slug string,
	) (*models.Professional, error)

	// -------- Business config --------
	GetBusinessConfig(
		ctx context.Context,
		professionalID uint,
	) (*models.BusinessConfig, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Blocked dates --------
	ListBlockedDates(
		ctx context.Context,
		professionalID uint,
	) ([]models.BlockedDate, error)

	// -------- Client directory --------
	RecordVisit(
		ctx context.Context,
		professionalID uint,
		name string,
		phone string,
		now time.Time,
	) (*models.Client, error)

	// -------- Appointment ledger --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForProfessional(
		ctx context.Context,
		professionalID uint,
	) ([]models.Appointment, error)
}
