package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"microscan/internal/config"
	"microscan/internal/handlers"
	"microscan/internal/logger"
	"microscan/internal/middleware"
	"microscan/internal/services"
	ws "microscan/internal/services/websocket"
)

// Setup registers API endpoints, the websocket preview, static file serving
// and the index page, wrapped with the CORS middleware.
func Setup(manager *services.Manager, hub *ws.HubService, cfg *config.Config, logger *logger.Logger) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", handlers.AnalyzeUploadHandler(manager, logger)).Methods(http.MethodPost)
	api.HandleFunc("/analyze/example", handlers.AnalyzeExampleHandler(manager, logger)).Methods(http.MethodPost)
	api.HandleFunc("/analyze/camera", handlers.AnalyzeCameraHandler(manager, logger)).Methods(http.MethodPost)
	api.HandleFunc("/examples", handlers.ListExamplesHandler(cfg, logger)).Methods(http.MethodGet)
	api.HandleFunc("/history", handlers.GetHistoryHandler(manager, logger)).Methods(http.MethodGet)
	api.HandleFunc("/history", handlers.ClearHistoryHandler(manager, logger)).Methods(http.MethodDelete)
	api.HandleFunc("/history/thumbnail", handlers.HistoryThumbnailHandler(manager, logger)).Methods(http.MethodGet)
	api.HandleFunc("/camera/preview", handlers.PreviewWebsocketHandler(hub, logger)).Methods(http.MethodGet)
	api.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// Static files and the single-page frontend
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.StaticDirectory))))
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(cfg.StaticDirectory, "index.html"))
	}).Methods(http.MethodGet)

	return middleware.CORS(r)
}
