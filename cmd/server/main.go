package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/config"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/infra"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/router"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Async machinery: one dispatcher shared between the HTTP layer (report
	// requests) and the background workers; SMTP goes through a circuit
	// breaker so a downed relay fast-fails.
	mailer := infra.NewMailer(cfg)
	mailCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)

	rutaRepo := repository.NewRutaRepository(db)
	polizaRepo := repository.NewPolizaRepository(db)
	conductorRepo := repository.NewConductorRepository(db)

	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, worker.Handlers{
		Reporte: worker.NewReporteWorker(rutaRepo, dispatcher, rdb, cfg.ReportStoragePath),
		Alerta:  worker.NewAlertaWorker(mailer, mailCB, rdb),
	})

	worker.StartVencimientosCron(ctx, worker.VencimientosCronConfig{
		PolizaRepo:    polizaRepo,
		ConductorRepo: conductorRepo,
		Dispatcher:    dispatcher,
		CB:            mailCB,
		Intervalo:     time.Duration(cfg.AlertaIntervaloHoras) * time.Hour,
		Destino:       cfg.AlertaEmailDestino,
	})

	r := router.New(cfg, db, rdb, dispatcher, mailCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("transport-pro backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
