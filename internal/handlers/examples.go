package handlers

import (
	"errors"
	"net/http"

	"microscan/internal/config"
	"microscan/internal/logger"
	"microscan/internal/source"
)

// ListExamplesHandler returns the sorted names of the bundled example
// images.
func ListExamplesHandler(cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := source.ListExamples(cfg.ExampleDirectory)
		if err != nil {
			if errors.Is(err, source.ErrExampleDirMissing) {
				writeError(w, err.Error(), cfg.ExampleDirectory, http.StatusInternalServerError)
				return
			}
			logger.Error("Error listing example images: %v", err)
			writeError(w, "Failed to list example images", "", http.StatusInternalServerError)
			return
		}

		writeJSON(w, map[string][]string{"examples": names}, http.StatusOK)
	}
}
