package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httpresp"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

type BlockedDatesHandler struct {
	db *gorm.DB
}

func NewBlockedDatesHandler(db *gorm.DB) *BlockedDatesHandler {
	return &BlockedDatesHandler{db: db}
}

type CreateBlockedDateRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Description string `json:"description"`
}

func (h *BlockedDatesHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var dates []models.BlockedDate
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&dates).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_dates", "Erro ao listar datas bloqueadas.")
		return
	}

	httpresp.List(c, dates)
}

func (h *BlockedDatesHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	blocked := models.BlockedDate{
		ProfessionalID: professionalID,
		Date:           date,
		Description:    req.Description,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_date", "Erro ao bloquear data.")
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *BlockedDatesHandler) Delete(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND professional_id = ?", id, professionalID).
		Delete(&models.BlockedDate{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_blocked_date", "Erro ao remover bloqueio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
