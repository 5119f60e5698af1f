package booking

import (
	"context"
	"time"

	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/dto"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// All devolve o histórico completo do profissional, sem recorte de período.
func (uc *ListAppointments) All(
	ctx context.Context,
	professionalID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointmentsForProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, professionalID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, professionalID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			Date:        ap.Date,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
