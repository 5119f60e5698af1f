package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httpresp"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	requestBooking *booking.RequestBooking
	setStatus      *booking.SetAppointmentStatus
	list           *booking.ListAppointments
}

func NewAppointmentHandler(
	requestBooking *booking.RequestBooking,
	setStatus *booking.SetAppointmentStatus,
	list *booking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		requestBooking: requestBooking,
		setStatus:      setStatus,
		list:           list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE (LANÇAMENTO MANUAL)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.requestBooking.Execute(
		c.Request.Context(),
		booking.RequestBookingInput{
			ProfessionalID: professionalID,
			ServiceID:      req.ServiceID,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			Date:           req.Date,
			Time:           req.Time,
			Source:         domain.SourceManual,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	// Sem data: histórico completo.
	dateStr := c.Query("date")
	if dateStr == "" {
		out, err := h.list.All(c.Request.Context(), professionalID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, out)
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.list.ByDate(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.list.ByMonth(c.Request.Context(), professionalID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) changeStatus(c *gin.Context, newStatus domain.Status) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), professionalID, uint(id), newStatus)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition",
				"Esse agendamento não permite essa mudança de status.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "service_inactive"):
		httperr.BadRequest(c, "service_inactive", "Serviço indisponível.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.BadRequest(c, "slot_unavailable", "Horário fora do expediente ou indisponível.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}
