package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/appointment"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende a página pública de agendamento: qualquer pessoa com
// o link /{slug} pode ver serviços, consultar horários e agendar. Tudo
// somente leitura, exceto a criação do agendamento (e do cliente derivado).
type PublicHandler struct {
	db             *gorm.DB
	requestBooking *booking.RequestBooking
	availability   *booking.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	requestBooking *booking.RequestBooking,
	availability *booking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		requestBooking: requestBooking,
		availability:   availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// PAGE (PROFISSIONAL + SERVIÇOS ATIVOS)
////////////////////////////////////////////////////////

func (h *PublicHandler) resolveSlug(c *gin.Context) (*models.Professional, bool) {
	slug := c.Param("slug")

	var pro models.Professional
	if err := h.db.Where("slug = ?", slug).First(&pro).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Página não encontrada.")
		return nil, false
	}
	return &pro, true
}

func (h *PublicHandler) GetPage(c *gin.Context) {
	pro, ok := h.resolveSlug(c)
	if !ok {
		return
	}

	var cfg models.BusinessConfig
	if err := h.db.Where("professional_id = ?", pro.ID).First(&cfg).Error; err != nil {
		httperr.Internal(c, "config_not_found", "Erro ao carregar a página.")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("professional_id = ? AND active = true", pro.ID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"business_name":     pro.BusinessName,
			"slug":              pro.Slug,
			"phone":             pro.Phone,
			"profile_image_url": pro.ProfileImageURL,
		},
		"theme_color": cfg.ThemeColor,
		"services":    services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	pro, ok := h.resolveSlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ProfessionalID: pro.ID,
			Date:           date,
			ExcludeBooked:  c.Query("exclude_booked") == "true",
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (PÚBLICO → MESMO ORQUESTRADOR)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	pro, ok := h.resolveSlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.requestBooking.Execute(
		c.Request.Context(),
		booking.RequestBookingInput{
			ProfessionalID: pro.ID,
			ServiceID:      req.ServiceID,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			Date:           req.Date,
			Time:           req.Time,
			Source:         domain.SourcePublic,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference": ap.Reference,
		"date":      ap.Date,
		"status":    ap.Status,
	})
}
