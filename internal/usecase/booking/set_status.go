package booking

import (
	"context"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/audit"
	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

// SetAppointmentStatus aplica uma transição de status do ciclo de vida
// (confirmar, cancelar, concluir). Transição ilegal devolve
// invalid_transition e nada é gravado.
type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	Now func() time.Time
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: auditDispatcher,
		Now:   time.Now,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch newStatus {
	case domain.StatusConfirmed:
		err = domain.Confirm(ap)
	case domain.StatusCancelled:
		err = domain.Cancel(ap, uc.Now())
	case domain.StatusCompleted:
		err = domain.Complete(ap, uc.Now())
	default:
		err = httperr.ErrBusiness("invalid_transition")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         "appointment_" + string(newStatus),
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
