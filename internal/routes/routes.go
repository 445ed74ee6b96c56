package routes

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studioarcadia/prenota/internal/audit"
	"github.com/studioarcadia/prenota/internal/config"
	"github.com/studioarcadia/prenota/internal/handlers"
	infraRepo "github.com/studioarcadia/prenota/internal/infra/repository"
	"github.com/studioarcadia/prenota/internal/mail"
	"github.com/studioarcadia/prenota/internal/middleware"
	"github.com/studioarcadia/prenota/internal/sessions"
	ucBooking "github.com/studioarcadia/prenota/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	mailer := mail.NewMailer(cfg, log)

	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	var sessionStore sessions.Store
	if cfg.RedisAddr != "" {
		sessionStore = sessions.NewRedisStore(cfg.RedisAddr, sessionTTL)
	} else {
		sessionStore = sessions.NewMemoryStore(sessionTTL, cfg.SessionMax)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	cancelByTokenUC := ucBooking.NewCancelByToken(bookingRepo, auditDispatcher)
	cancelByIDUC := ucBooking.NewCancelByID(bookingRepo, auditDispatcher)
	deleteUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	updateUC := ucBooking.NewUpdateBooking(bookingRepo, mailer, auditDispatcher)
	listUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		createUC,
		cancelByTokenUC,
		mailer,
		cfg.PublicBase,
		log,
	)

	adminHandler := handlers.NewAdminHandler(
		cfg,
		sessionStore,
		createUC,
		cancelByIDUC,
		deleteUC,
		updateUC,
		listUC,
		log,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/api/availability", publicHandler.Availability)
	r.POST("/prenota", publicHandler.Prenota)
	r.GET("/annulla", publicHandler.Annulla)

	r.POST("/admin/login", adminHandler.Login)
	r.GET("/admin/logout", adminHandler.Logout)

	// ======================================================
	// ADMIN API (session-gated)
	// ======================================================
	api := r.Group("/api/bookings")
	api.Use(middleware.AdminGate(sessionStore))
	{
		api.GET("", adminHandler.List)
		api.POST("/create", adminHandler.Create)
		api.POST("/cancel", adminHandler.Cancel)
		api.POST("/delete", adminHandler.Delete)
		api.POST("/update", adminHandler.Update)
	}

	// ======================================================
	// STATIC
	// ======================================================
	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.StaticFile("/index.html", filepath.Join(cfg.StaticDir, "index.html"))
	r.StaticFile("/admin", filepath.Join(cfg.StaticDir, "admin.html"))
	r.Static("/css", filepath.Join(cfg.StaticDir, "css"))
	r.Static("/js", filepath.Join(cfg.StaticDir, "js"))
	r.Static("/public", filepath.Join(cfg.StaticDir, "public"))
}
