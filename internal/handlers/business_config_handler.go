package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BusinessConfigHandler struct {
	db *gorm.DB
}

func NewBusinessConfigHandler(db *gorm.DB) *BusinessConfigHandler {
	return &BusinessConfigHandler{db: db}
}

func (h *BusinessConfigHandler) load(c *gin.Context) (*models.BusinessConfig, bool) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var cfg models.BusinessConfig
	if err := h.db.Where("professional_id = ?", professionalID).First(&cfg).Error; err != nil {
		httperr.NotFound(c, "config_not_found", "Configuração não encontrada.")
		return nil, false
	}
	return &cfg, true
}

func (h *BusinessConfigHandler) save(c *gin.Context, cfg *models.BusinessConfig) {
	if err := h.db.Save(cfg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_config", "Erro ao salvar configuração.")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ======================================================
// GET / PATCH
// ======================================================

func (h *BusinessConfigHandler) Get(c *gin.Context) {
	cfg, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type UpdateConfigRequest struct {
	Interval   *int    `json:"interval,omitempty"`
	ThemeColor *string `json:"theme_color,omitempty"`
}

func (h *BusinessConfigHandler) Update(c *gin.Context) {
	cfg, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Interval != nil {
		next, err := schedule.SetInterval(cfg.ToDomain(), *req.Interval)
		if err != nil {
			httperr.BadRequest(c, "invalid_interval",
				"Intervalo precisa ser 15, 30, 45 ou 60 minutos.")
			return
		}
		cfg.ApplyDomain(next)
	}

	if req.ThemeColor != nil {
		cfg.ThemeColor = *req.ThemeColor
	}

	h.save(c, cfg)
}

// ======================================================
// EXPEDIENTE (SEMANA INTEIRA)
// ======================================================

type ExpedienteUpdateRequest struct {
	Interval int                 `json:"interval" binding:"required"`
	Days     []ExpedienteDayBody `json:"days" binding:"required,len=7"`
}

type ExpedienteDayBody struct {
	Weekday int  `json:"weekday" binding:"min=0,max=6"`
	Active  bool `json:"active"`
	Shifts  []ExpedienteShiftBody `json:"shifts" binding:"required,len=2"`
}

type ExpedienteShiftBody struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

func (h *BusinessConfigHandler) UpdateExpediente(c *gin.Context) {
	cfg, ok := h.load(c)
	if !ok {
		return
	}

	var req ExpedienteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	next := schedule.WeeklyConfig{Interval: req.Interval}
	for _, d := range req.Days {
		day := schedule.DayExpediente{
			Weekday: time.Weekday(d.Weekday),
			Active:  d.Active,
		}
		for i := 0; i < 2; i++ {
			day.Shifts[i] = schedule.Shift{
				Start:  d.Shifts[i].Start,
				End:    d.Shifts[i].End,
				Active: d.Shifts[i].Active,
			}
		}
		next.Days[d.Weekday%7] = day
	}

	if err := schedule.Validate(next); err != nil {
		httperr.BadRequest(c, businessCode(err),
			"Expediente inválido: confira intervalo e horários dos turnos.")
		return
	}

	cfg.ApplyDomain(next)
	h.save(c, cfg)
}

// ======================================================
// PATCH DE UM DIA / UM TURNO
// ======================================================

func (h *BusinessConfigHandler) UpdateDay(c *gin.Context) {
	cfg, ok := h.load(c)
	if !ok {
		return
	}

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	var patch schedule.DayPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	next, err := schedule.SetDay(cfg.ToDomain(), time.Weekday(weekday), patch)
	if err != nil {
		httperr.BadRequest(c, businessCode(err), "Não foi possível alterar o dia.")
		return
	}

	cfg.ApplyDomain(next)
	h.save(c, cfg)
}

func (h *BusinessConfigHandler) UpdateShift(c *gin.Context) {
	cfg, ok := h.load(c)
	if !ok {
		return
	}

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	shiftIndex, err := strconv.Atoi(c.Param("shift"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shift_index", "Turno inválido.")
		return
	}

	var patch schedule.ShiftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	next, err := schedule.SetShift(cfg.ToDomain(), time.Weekday(weekday), shiftIndex, patch)
	if err != nil {
		httperr.BadRequest(c, businessCode(err),
			"Turno inválido: início precisa vir antes do fim.")
		return
	}

	cfg.ApplyDomain(next)
	h.save(c, cfg)
}

func businessCode(err error) string {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "validation_error"
}
