package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"microscan/internal/detector"
	"microscan/internal/dto"
	"microscan/internal/source"
)

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message, details string, status int) {
	writeJSON(w, dto.ErrorResponse{Error: message, Details: details}, status)
}

// writeAnalysisError maps flow failures to API responses: a non-200 from the
// detection endpoint surfaces its body as diagnostic text, bad input is the
// client's fault, everything else is a gateway failure.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var apiErr *detector.APIError
	switch {
	case errors.As(err, &apiErr):
		writeError(w, "Error from detection API", apiErr.Body, http.StatusBadGateway)
	case errors.Is(err, source.ErrUnsupportedType), errors.Is(err, source.ErrEmptyUpload):
		writeError(w, err.Error(), "", http.StatusBadRequest)
	case errors.Is(err, source.ErrExampleDirMissing):
		writeError(w, err.Error(), "", http.StatusInternalServerError)
	default:
		writeError(w, "Could not connect to detection API", err.Error(), http.StatusBadGateway)
	}
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
