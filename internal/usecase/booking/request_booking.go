package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/audit"
	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/observability/metrics"
)

// ======================================================
// INPUT
// ======================================================

type RequestBookingInput struct {
	ProfessionalID uint
	ServiceID      uint

	ClientName  string
	ClientPhone string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Source domain.Source
}

// ======================================================
// USE CASE
// ======================================================

// RequestBooking é a única porta de entrada de agendamento, usada tanto pela
// página pública quanto pelo lançamento manual do profissional. Os dois
// caminhos gravam o agendamento já confirmado.
//
// São duas escritas sem transação: o upsert do cliente e o insert do
// agendamento. Falha na primeira interrompe antes da segunda; falha na
// segunda não desfaz a primeira (o upsert é seguro de repetir, o insert não).
type RequestBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.BookingMetrics

	Now func() time.Time
}

func NewRequestBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	m *metrics.BookingMetrics,
) *RequestBooking {
	return &RequestBooking{
		repo:    repo,
		audit:   auditDispatcher,
		metrics: m,
		Now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	uc.metrics.ObserveBooking(string(in.Source), outcome)

	return ap, err
}

func (uc *RequestBooking) execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Appointment, error) {

	// 1. Profissional + configuração
	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	cfgRow, err := uc.repo.GetBusinessConfig(ctx, pro.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, pro.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// 2. Validação do horário pedido contra o expediente
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		time.Local,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	blockedRows, err := uc.repo.ListBlockedDates(ctx, pro.ID)
	if err != nil {
		return nil, err
	}
	blocked := schedule.NewDateSet(blockedDates(blockedRows)...)

	if !slotExists(start, uc.Now(), cfgRow.ToDomain(), blocked, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// 3. Cliente (upsert com contador de visitas)
	client, err := uc.repo.RecordVisit(
		ctx,
		pro.ID,
		in.ClientName,
		in.ClientPhone,
		uc.Now(),
	)
	if err != nil {
		return nil, err
	}

	// 4. Agendamento confirmado
	ap := &models.Appointment{
		ProfessionalID: pro.ID,
		ServiceID:      svc.ID,
		ClientName:     client.Name,
		ClientPhone:    client.Phone,
		Date:           start,
		Status:         string(domain.StatusConfirmed),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: pro.ID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata: map[string]any{
			"source": string(in.Source),
			"date":   in.Date,
			"time":   in.Time,
		},
	})

	return ap, nil
}

// slotExists confere se o horário pedido é um dos slots gerados para a data.
// A validação é só contra o expediente; agendamentos já existentes no mesmo
// horário não impedem a criação (ver GetAvailability.ExcludeBooked).
func slotExists(date, now time.Time, cfg schedule.WeeklyConfig, blocked schedule.DateSet, hm string) bool {
	for _, slot := range schedule.Slots(date, now, cfg, blocked) {
		if slot == hm {
			return true
		}
	}
	return false
}

func blockedDates(rows []models.BlockedDate) []time.Time {
	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
	}
	return dates
}
