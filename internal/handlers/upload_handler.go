package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/storage"
)

const maxUploadBytes = 5 << 20

type UploadHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewUploadHandler(db *gorm.DB, uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader}
}

// ProfileImage recebe multipart "image", converte para webp e grava no bucket.
func (h *UploadHandler) ProfileImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "uploads_disabled", "Upload de imagem não configurado.")
		return
	}

	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}
	defer src.Close()

	processed, err := storage.ProcessProfileImage(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("profiles/%d.webp", professionalID)

	url, err := h.uploader.Upload(c.Request.Context(), key, processed, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar a imagem.")
		return
	}

	if err := h.db.Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Update("profile_image_url", url).Error; err != nil {

		httperr.Internal(c, "failed_to_save_image_url", "Erro ao salvar a imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}
