package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/agendapy/cita-scheduler/internal/config"
	dbpkg "github.com/agendapy/cita-scheduler/internal/db"
	"github.com/agendapy/cita-scheduler/internal/logging"
	"github.com/agendapy/cita-scheduler/internal/metrics"
	"github.com/agendapy/cita-scheduler/internal/middleware"
	"github.com/agendapy/cita-scheduler/internal/reminder"
	"github.com/agendapy/cita-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := reminder.NewScheduler(db)
	worker := reminder.NewWorker(
		scheduler,
		reminder.NewLogNotifier(logger),
		logger,
		cfg.ReminderPollInterval,
		cfg.ReminderLookback,
		cfg.Timezone,
	)
	go worker.Run(ctx)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger, scheduler)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
