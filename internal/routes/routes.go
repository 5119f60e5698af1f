package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/audit"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/config"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/handlers"
	infraRepo "github.com/mmanuelaprado/pradoagenda-sub000/internal/infra/repository"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/observability/metrics"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/storage"
	ucBooking "github.com/mmanuelaprado/pradoagenda-sub000/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	bookingMetrics := metrics.NewBookingMetrics(nil)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	requestBookingUC := ucBooking.NewRequestBooking(
		bookingRepo,
		auditDispatcher,
		bookingMetrics,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		bookingMetrics,
	)

	setStatusUC := ucBooking.NewSetAppointmentStatus(
		bookingRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	configHandler := handlers.NewBusinessConfigHandler(db)
	blockedDatesHandler := handlers.NewBlockedDatesHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		requestBookingUC,
		setStatusUC,
		listAppointmentsUC,
	)

	publicHandler := handlers.NewPublicHandler(db, requestBookingUC, availabilityUC)
	uploadHandler := handlers.NewUploadHandler(db, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (rate limited)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(rdb, 30, time.Minute))
		{
			publicAPI.GET("/:slug", publicHandler.GetPage)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/profile-image", uploadHandler.ProfileImage)

			secured.GET("/me/config", configHandler.Get)
			secured.PATCH("/me/config", configHandler.Update)
			secured.PUT("/me/config/expediente", configHandler.UpdateExpediente)
			secured.PATCH("/me/config/days/:weekday", configHandler.UpdateDay)
			secured.PATCH("/me/config/days/:weekday/shifts/:shift", configHandler.UpdateShift)

			secured.GET("/me/blocked-dates", blockedDatesHandler.List)
			secured.POST("/me/blocked-dates", blockedDatesHandler.Create)
			secured.DELETE("/me/blocked-dates/:id", blockedDatesHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/clients", clientHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
