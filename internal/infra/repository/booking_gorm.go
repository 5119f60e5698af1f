package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *BookingGormRepository) GetProfessionalBySlug(
	ctx context.Context,
	slug string,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Business config
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessConfig(
	ctx context.Context,
	professionalID uint,
) (*models.BusinessConfig, error) {

	var cfg models.BusinessConfig
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", serviceID, professionalID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *BookingGormRepository) ListBlockedDates(
	ctx context.Context,
	professionalID uint,
) ([]models.BlockedDate, error) {

	var dates []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// --------------------------------------------------
// Client directory
// --------------------------------------------------

// RecordVisit faz o upsert do cliente pela chave (professional_id, phone).
// Sempre incrementa o contador de visitas; o nome gravado no primeiro
// agendamento é preservado nos seguintes.
func (r *BookingGormRepository) RecordVisit(
	ctx context.Context,
	professionalID uint,
	name string,
	phone string,
	now time.Time,
) (*models.Client, error) {

	var existing models.Client
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND phone = ?", professionalID, phone).
		First(&existing).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var found *models.Client
	if err == nil {
		found = &existing
	}

	client := domain.ApplyVisit(found, professionalID, name, phone, now)

	if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

// CreateAppointment atribui identidade (referência pública) e o status
// inicial quando o chamador não informou um. Nenhuma checagem de conflito
// de horário é feita aqui.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.Reference == "" {
		ap.Reference = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}

	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND status IN ? AND date >= ? AND date < ?",
			professionalID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			start, end,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"professional_id = ? AND date >= ? AND date < ?",
			professionalID,
			start,
			end,
		).
		Order("date ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// ListAppointmentsForProfessional devolve o histórico completo, sem filtro
// de status nem de período.
func (r *BookingGormRepository) ListAppointmentsForProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
