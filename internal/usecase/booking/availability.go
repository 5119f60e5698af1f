package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/observability/metrics"
)

type GetAvailability struct {
	repo    domain.Repository
	metrics *metrics.BookingMetrics

	Now func() time.Time
}

func NewGetAvailability(repo domain.Repository, m *metrics.BookingMetrics) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		metrics: m,
		Now:     time.Now,
	}
}

// Execute gera os horários livres da data. O resultado é recalculado a cada
// chamada. Por padrão horários já agendados NÃO são descontados; o filtro é
// ligado explicitamente por ExcludeBooked.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	uc.metrics.ObserveAvailability()

	cfgRow, err := uc.repo.GetBusinessConfig(ctx, in.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	blockedRows, err := uc.repo.ListBlockedDates(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	slots := schedule.Slots(
		in.Date,
		uc.Now(),
		cfgRow.ToDomain(),
		schedule.NewDateSet(blockedDates(blockedRows)...),
	)

	if !in.ExcludeBooked || len(slots) == 0 {
		return slots, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	taken := make([]string, 0, len(aps))
	for _, ap := range aps {
		taken = append(taken, ap.Date.Format("15:04"))
	}

	return schedule.ExcludeBooked(slots, taken), nil
}
