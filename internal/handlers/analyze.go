package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"microscan/internal/logger"
	"microscan/internal/services"
	"microscan/internal/source"
)

const maxUploadSize = 50 << 20 // 50MB

// AnalyzeUploadHandler accepts a multipart image upload in the "file" field
// and runs the full analysis flow.
func AnalyzeUploadHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeError(w, "Failed to parse form", err.Error(), http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, "No file uploaded", "", http.StatusBadRequest)
			return
		}
		defer file.Close()

		imageData, err := io.ReadAll(file)
		if err != nil {
			writeError(w, "Failed to read file", err.Error(), http.StatusInternalServerError)
			return
		}

		resp, err := manager.AnalyzeSource(r.Context(), source.NewUpload(imageData), "upload")
		if err != nil {
			logger.Error("Upload analysis failed: %v", err)
			writeAnalysisError(w, err)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	}
}

// AnalyzeExampleHandler analyzes one of the bundled example images,
// selected by name in the JSON body.
func AnalyzeExampleHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, "Example name is required", "", http.StatusBadRequest)
			return
		}

		src := source.NewExample(manager.Config().ExampleDirectory, req.Name)
		resp, err := manager.AnalyzeSource(r.Context(), src, "example")
		if err != nil {
			logger.Error("Example analysis failed (%s): %v", req.Name, err)
			writeAnalysisError(w, err)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	}
}

// AnalyzeCameraHandler captures one frame from the configured camera and
// analyzes it.
func AnalyzeCameraHandler(manager *services.Manager, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src := source.NewCamera(manager.Config().CameraDevice)
		resp, err := manager.AnalyzeSource(r.Context(), src, "camera")
		if err != nil {
			logger.Error("Camera analysis failed: %v", err)
			writeAnalysisError(w, err)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	}
}
