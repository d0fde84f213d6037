// Package main is the entry point for the TaxHawk demo server. It wires
// the pure calculation kernel (internal/checks, internal/orchestrator)
// behind an HTTP API, backed by a local SQLite report cache and an
// optional nightly re-evaluation job that refreshes holding-period
// alerts as FY boundaries roll over.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spiffler33/taxhawk/internal/archive"
	"github.com/spiffler33/taxhawk/internal/cache"
	"github.com/spiffler33/taxhawk/internal/config"
	"github.com/spiffler33/taxhawk/internal/httpapi"
	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/scheduler"
	"github.com/spiffler33/taxhawk/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty})
	logger.SetGlobalLogger(log)
	log.Info().Msg("starting taxhawk")

	store, err := cache.Open(cfg.CacheDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open report cache")
	}
	defer store.Close()
	log.Info().Str("path", cfg.CacheDBPath).Msg("report cache opened")

	var archiver *archive.Archiver
	if cfg.ArchiveEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		archiver, err = archive.New(ctx, cfg.S3Bucket, cfg.S3Region)
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize S3 archiver, continuing without archival")
		} else {
			log.Info().Str("bucket", cfg.S3Bucket).Msg("S3 archiver initialized")
		}
	}

	sched := scheduler.New(log)
	_, err = sched.ScheduleNightlyReevaluation(cfg.CronSchedule, func() []scheduler.Subject {
		// The demo binary has no persistent user registry; the nightly
		// job re-evaluates whatever subjects the caller wires in here.
		return nil
	}, func(ctx context.Context, subject scheduler.Subject, report model.Report) {
		if archiver != nil {
			if _, err := archiver.Put(ctx, report); err != nil {
				log.Warn().Err(err).Msg("failed to archive nightly report")
			}
		}
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to schedule nightly reevaluation")
	} else {
		sched.Start()
		log.Info().Str("schedule", cfg.CronSchedule).Msg("scheduler started")
	}

	srv := httpapi.New(log, store)
	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("http server starting")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http server forced to shutdown")
	}

	sched.Stop()
	log.Info().Msg("taxhawk stopped")
}
