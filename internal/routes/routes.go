package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/audit"
	"github.com/agendapy/cita-scheduler/internal/cache"
	"github.com/agendapy/cita-scheduler/internal/config"
	"github.com/agendapy/cita-scheduler/internal/handlers"
	infraRepo "github.com/agendapy/cita-scheduler/internal/infra/repository"
	"github.com/agendapy/cita-scheduler/internal/middleware"
	"github.com/agendapy/cita-scheduler/internal/reminder"
	ucCita "github.com/agendapy/cita-scheduler/internal/usecase/cita"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
	scheduler *reminder.Scheduler,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	citaRepo := infraRepo.NewCitaGormRepository(db)
	loadCache := cache.NewDailyLoadCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES (CITAS)
	// ======================================================
	createCitaUC := ucCita.NewCreateCita(citaRepo, scheduler, auditDispatcher, logger)
	updateCitaUC := ucCita.NewUpdateCita(citaRepo, auditDispatcher)
	cancelCitaUC := ucCita.NewCancelCita(citaRepo, auditDispatcher)
	restoreCitaUC := ucCita.NewRestoreCita(citaRepo, auditDispatcher)
	getCitaUC := ucCita.NewGetCita(citaRepo)
	listByDateUC := ucCita.NewListCitasByDate(citaRepo, cfg.Timezone)
	listByClientUC := ucCita.NewListCitasByClient(citaRepo)
	dailyLoadUC := ucCita.NewDailyLoad(citaRepo, loadCache, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	reminderHandler := handlers.NewReminderHandler(scheduler)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	citaHandler := handlers.NewCitaHandler(
		createCitaUC,
		updateCitaUC,
		cancelCitaUC,
		restoreCitaUC,
		getCitaUC,
		listByDateUC,
		listByClientUC,
		dailyLoadUC,
	)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/clients/:id/citas", citaHandler.ListByClient)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/services", catalogHandler.ListServices)
			secured.POST("/services", catalogHandler.CreateService)
			secured.DELETE("/services/:id", catalogHandler.DeleteService)

			secured.GET("/sub-services", catalogHandler.ListSubServices)
			secured.POST("/sub-services", catalogHandler.CreateSubService)
			secured.PATCH("/sub-services/:id", catalogHandler.UpdateSubService)
			secured.DELETE("/sub-services/:id", catalogHandler.DeleteSubService)

			// ------------------------------
			// TEMPLATES
			// ------------------------------
			secured.GET("/templates", templateHandler.List)
			secured.POST("/templates", templateHandler.Create)
			secured.PATCH("/templates/:id", templateHandler.Update)
			secured.DELETE("/templates/:id", templateHandler.Delete)

			// ------------------------------
			// CITAS
			// ------------------------------
			secured.POST("/citas", citaHandler.Create)
			secured.GET("/citas", citaHandler.ListByDate)
			secured.GET("/dashboard/daily-load", citaHandler.DailyLoad)
			secured.GET("/citas/:id", citaHandler.Get)
			secured.PATCH("/citas/:id", citaHandler.Update)
			secured.PATCH("/citas/:id/cancel", citaHandler.Cancel)
			secured.PATCH("/citas/:id/restore", citaHandler.Restore)

			// ------------------------------
			// REMINDERS / AUDIT
			// ------------------------------
			secured.GET("/reminders", reminderHandler.List)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
