package handlers

import (
	"net/http"
	"strconv"
	"time"

	"microscan/internal/dto"
	"microscan/internal/logger"
	"microscan/internal/model"
	"microscan/internal/services"
)

// GetHistoryHandler lists recorded scans, newest first, with filtering and
// pagination.
func GetHistoryHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := atoiDefault(q.Get("page"), 1)
		limit := atoiDefault(q.Get("limit"), manager.Config().HistoryLimit)

		filter := &model.ScanFilter{
			Source: q.Get("source"),
			Status: q.Get("status"),
			Limit:  limit,
			Offset: (page - 1) * limit,
		}

		total, err := manager.History().GetTotalCount(filter)
		if err != nil {
			logger.Error("Error counting scan history: %v", err)
			writeError(w, "Failed to read scan history", "", http.StatusInternalServerError)
			return
		}

		scans, err := manager.History().GetAll(filter)
		if err != nil {
			logger.Error("Error reading scan history: %v", err)
			writeError(w, "Failed to read scan history", "", http.StatusInternalServerError)
			return
		}

		entries := make([]dto.HistoryEntry, 0, len(scans))
		for _, s := range scans {
			entries = append(entries, dto.HistoryEntry{
				ID:         s.ID,
				CreatedAt:  s.CreatedAt.Format(time.RFC3339),
				Source:     s.Source,
				Status:     s.Status,
				RiskScore:  s.RiskScore,
				TotalCount: s.TotalCount,
				MinSizeNM:  s.MinSizeNM,
				AvgSizeNM:  s.AvgSizeNM,
				MaxSizeNM:  s.MaxSizeNM,
				MinCount:   s.MinCount,
				AvgCount:   s.AvgCount,
				MaxCount:   s.MaxCount,
			})
		}

		data := dto.HistoryData{
			Entries:     entries,
			Length:      total,
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
			Limit:       limit,
		}

		writeJSON(w, data, http.StatusOK)
	}
}

// ClearHistoryHandler deletes all recorded scans.
func ClearHistoryHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := manager.History().Clear(); err != nil {
			logger.Error("Error clearing scan history: %v", err)
			writeError(w, "Failed to clear scan history", "", http.StatusInternalServerError)
			return
		}

		logger.Info("Scan history cleared")
		writeJSON(w, map[string]string{"status": "cleared"}, http.StatusOK)
	}
}

// HistoryThumbnailHandler serves the stored JPEG thumbnail of one scan.
func HistoryThumbnailHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			writeError(w, "Invalid scan id", "", http.StatusBadRequest)
			return
		}

		thumb, err := manager.History().GetThumbnail(id)
		if err != nil {
			logger.Error("Error reading thumbnail %d: %v", id, err)
			writeError(w, "Failed to read thumbnail", "", http.StatusInternalServerError)
			return
		}
		if thumb == nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(thumb)
	}
}
