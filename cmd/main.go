package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Leganyst/meetpoint/internal/config"
	"github.com/Leganyst/meetpoint/internal/db"
	"github.com/Leganyst/meetpoint/internal/httpapi"
	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/repository"
	"github.com/Leganyst/meetpoint/internal/seed"
	"github.com/Leganyst/meetpoint/internal/service"
)

func main() {
	// 1. Config from env / .env.
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := newLogger(cfg.LogLevel)

	// 2. Open the store through GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("init db")
	}

	// 3. Model migrations.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("sql DB")
	}
	defer sqlDB.Close()

	// 4. First-run directory seed.
	if err := seed.Participants(context.Background(), gormDB); err != nil {
		log.Fatal().Err(err).Msg("seed participants")
	}

	// 5. Repositories (GORM implementations).
	participantRepo := repository.NewGormParticipantRepository(gormDB)
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)
	sessionRepo := repository.NewGormSessionRepository(gormDB)

	// 6. Core services.
	directorySvc := service.NewDirectoryService(participantRepo, sessionRepo, log)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, participantRepo, log)
	defer directorySvc.StopLocationWatch()

	// 7. Loopback JSON surface for the UI.
	api := httpapi.New(directorySvc, appointmentSvc, log)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("core http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http serve")
		}
	}()

	// 8. Graceful shutdown on signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down http server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
