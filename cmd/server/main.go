package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cdo9608/sistema-consumibles/internal/catalog"
	"github.com/Cdo9608/sistema-consumibles/internal/config"
	"github.com/Cdo9608/sistema-consumibles/internal/export"
	"github.com/Cdo9608/sistema-consumibles/internal/infra"
	"github.com/Cdo9608/sistema-consumibles/internal/persist"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"
	"github.com/Cdo9608/sistema-consumibles/internal/router"
	"github.com/Cdo9608/sistema-consumibles/internal/service"
	"github.com/Cdo9608/sistema-consumibles/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	cat := catalog.Cargar(cfg.StockFile, cfg.SitesFile)

	entradaRepo := repository.NewEntradaRepository(db)
	salidaRepo := repository.NewSalidaRepository(db)

	// Empty ledgers are reseeded from the JSON snapshots, so a wiped container
	// volume comes back with its history intact.
	store := snapshot.NewStore(cfg.DataDir)
	if err := snapshot.RestaurarSiVacio(context.Background(), store, entradaRepo, salidaRepo); err != nil {
		log.Fatal().Err(err).Msg("snapshot restore failed")
	}

	var remoto infra.ArchivoRemoto
	if cfg.GitHubToken != "" && cfg.GitHubRepo != "" {
		gh, err := infra.NewGitHubArchive(cfg.GitHubToken, cfg.GitHubRepo, cfg.GitHubBranch)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid GitHub archival config")
		}
		remoto = gh
	} else {
		log.Info().Msg("remote archival disabled (no GitHub token/repo configured)")
	}

	stockSvc := service.NewStockService(cat, entradaRepo, salidaRepo)
	exporter := export.NewExporter(cfg.ExportsDir)
	sinc := persist.NewSincronizador(store, entradaRepo, salidaRepo, exporter, remoto, stockSvc,
		cfg.ExportEvery, cfg.ExportKeep)

	r := router.New(cfg, db, cat, sinc, entradaRepo, salidaRepo)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory backend listening on :%d", cfg.Port)
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
