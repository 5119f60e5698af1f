package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/validators"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, professionalID).Error; err != nil {
		httperr.Internal(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional": publicProfile(&pro)})
}

type UpdateProfileRequest struct {
	BusinessName *string `json:"business_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// UpdateMe altera o perfil. Renomear o negócio rederiva o slug público.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, professionalID).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.BusinessName != nil {
		slug := validators.Slugify(*req.BusinessName)
		if slug == "" {
			httperr.BadRequest(c, "invalid_business_name",
				"Nome do negócio precisa conter letras ou números.")
			return
		}
		pro.BusinessName = *req.BusinessName
		pro.Slug = slug
	}
	if req.Phone != nil {
		pro.Phone = *req.Phone
	}

	if err := h.db.Save(&pro).Error; err != nil {
		writeConflictOrInternal(c, err, "failed_to_update_professional")
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional": publicProfile(&pro)})
}
