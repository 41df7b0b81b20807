package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// respondJSON writes a JSON response body
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// respondMessage writes the standard {"message": ...} success envelope
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps a service error onto its HTTP status and writes the
// single-message error envelope. Internal causes are logged here and never
// reach the client.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch service.CodeOf(err) {
	case service.CodeInvalid:
		status = http.StatusBadRequest
	case service.CodeUnauthorized:
		status = http.StatusUnauthorized
	case service.CodeForbidden:
		status = http.StatusForbidden
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeConflict:
		status = http.StatusConflict
	case service.CodeInternal:
		logrus.WithError(err).Error("internal error")
	}

	respondJSON(w, status, map[string]string{"error": service.MessageOf(err)})
}

// respondBadJSON handles malformed request bodies
func respondBadJSON(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Corps de requête invalide."})
}
