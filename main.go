package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/douze-points/internal/config"
	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/handlers"
	"github.com/aaronzipp/douze-points/internal/logging"
	"github.com/aaronzipp/douze-points/internal/sse"
	"github.com/aaronzipp/douze-points/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	log := logging.Setup(level, cfg.LogFormat).WithField("module", "main")

	gameStore, closeStore, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to open game store")
	}
	defer closeStore()

	// Seed the live game from the template on first start
	if _, err := gameStore.Load(context.Background()); errors.Is(err, store.ErrGameNotFound) {
		if _, err := game.Reset(context.Background(), gameStore, cfg.TemplatePath); err != nil {
			log.WithError(err).Warn("No live game and no usable template; GET /game will 404 until one is posted")
		}
	} else if err != nil {
		log.WithError(err).Warn("Live game could not be read")
	}

	ctx := &handlers.Context{
		Store:        gameStore,
		Hub:          sse.NewHub(),
		TemplatePath: cfg.TemplatePath,
		StaticDir:    cfg.StaticDir,
		PublicURL:    cfg.PublicURL,
		CORSOrigins:  cfg.CORSOrigins,
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           ctx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr).WithField("store", cfg.StoreBackend).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Server shutdown incomplete")
	}
	ctx.Wait()
	log.Info("Server stopped")
}

// openStore builds the configured store and a func that releases it
func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemoryStore(cfg.SavePath), func() {}, nil
	case config.BackendPostgres:
		db, err := store.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		pg, err := store.NewPostgresStore(db, cfg.SavePath)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return pg, closeDB, nil
	default:
		return store.NewFileStore(cfg.SavePath), func() {}, nil
	}
}
