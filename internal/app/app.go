package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"microscan/internal/analyzer"
	"microscan/internal/config"
	"microscan/internal/detector"
	"microscan/internal/logger"
	"microscan/internal/repository/sqlite"
	"microscan/internal/routes"
	"microscan/internal/services"
	"microscan/internal/services/camera"
	ws "microscan/internal/services/websocket"
)

// App holds the wired services of the analysis server.
type App struct {
	config   *config.Config
	logger   *logger.Logger
	db       *sqlite.DB
	manager  *services.Manager
	hub      *ws.HubService
	streamer *camera.Streamer
}

func New(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.LogDirectory)

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	det := detector.NewClient(cfg.APIURL, time.Duration(cfg.RequestTimeout)*time.Second)
	an := analyzer.New(analyzer.Config{
		PixelToNM:     cfg.PixelToNM,
		RiskThreshold: cfg.RiskThreshold,
	})
	history := sqlite.NewScanRepository(db)
	manager := services.NewManager(det, an, history, cfg, log)

	hub := ws.NewHubService(log)
	streamer := camera.NewStreamer(hub, log, cfg.CameraDevice, cfg.PreviewInterval)

	return &App{
		config:   cfg,
		logger:   log,
		db:       db,
		manager:  manager,
		hub:      hub,
		streamer: streamer,
	}, nil
}

// Run starts the background services and serves HTTP until the listener
// fails or ctx is canceled, in which case the server drains in-flight
// requests before returning.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	go a.hub.Run(ctx)
	go a.streamer.Run(ctx)

	router := routes.Setup(a.manager, a.hub, a.config, a.logger)

	srv := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", a.config.Port),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	a.logger.Info("Microplastic analysis server starting on http://localhost%s", srv.Addr)
	a.logger.Info("Detection endpoint: %s", a.config.APIURL)
	a.logger.Info("Example images: %s", a.config.ExampleDirectory)
	a.logger.Info("History database: %s", a.config.DatabasePath)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
