package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/config"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Phone        string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	slug := validators.Slugify(req.BusinessName)
	if slug == "" {
		httperr.BadRequest(c, "invalid_business_name",
			"Nome do negócio precisa conter letras ou números.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	pro := models.Professional{
		Email:        email,
		PasswordHash: string(hashed),
		BusinessName: req.BusinessName,
		Slug:         slug,
		Phone:        req.Phone,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		writeConflictOrInternal(c, err, "failed_to_create_professional")
		return
	}

	// expediente padrão nasce junto com a conta
	cfg := models.BusinessConfig{ProfessionalID: pro.ID}
	cfg.ApplyDomain(schedule.DefaultConfig())

	if err := h.db.Create(&cfg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_config", "Erro ao criar configuração inicial.")
		return
	}

	token, err := h.generateToken(&pro)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"professional": publicProfile(&pro),
		"token":        token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var pro models.Professional
	if err := h.db.Where("email = ?", email).First(&pro).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pro.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(&pro)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": publicProfile(&pro),
		"token":        token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(pro *models.Professional) (string, error) {
	claims := jwt.MapClaims{
		"sub": pro.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// --------- Helpers ---------

func publicProfile(pro *models.Professional) gin.H {
	return gin.H{
		"id":                pro.ID,
		"email":             pro.Email,
		"business_name":     pro.BusinessName,
		"slug":              pro.Slug,
		"phone":             pro.Phone,
		"profile_image_url": pro.ProfileImageURL,
	}
}

// writeConflictOrInternal traduz violação de unicidade em orientação por
// campo; qualquer outra falha vira 500 genérico.
func writeConflictOrInternal(c *gin.Context, err error, internalCode string) {
	if field, ok := httperr.UniqueViolationField(err); ok {
		switch field {
		case "email":
			httperr.Conflict(c, "conflict_email",
				"Já existe uma conta com esse e-mail. Use outro e-mail ou faça login.")
		case "slug":
			httperr.Conflict(c, "conflict_slug",
				"Já existe uma página com esse nome de negócio. Escolha outro nome.")
		default:
			httperr.Conflict(c, "conflict", "Registro duplicado.")
		}
		return
	}

	httperr.Internal(c, internalCode, "Erro ao gravar os dados.")
}
