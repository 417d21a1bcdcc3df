package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// ServeHTTP exposes the same submission flow over plain HTTP for the
// standalone server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.SignupFailure{Error: "invalid request payload"})
		return
	}

	status, resp := h.process(r.Context(), body)
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Failed to write response body")
	}
}
