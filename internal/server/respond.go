package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ontrackhk/ontrack/internal/narrative"
	"github.com/ontrackhk/ontrack/internal/repository"
	"github.com/ontrackhk/ontrack/internal/session"
	"github.com/ontrackhk/ontrack/internal/survey"
)

// errorBody is the uniform error payload: a human-readable detail string.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Client faults keep
// their detail text; everything else gets a safe generic message.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var verr *survey.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: verr.Detail})
	case errors.Is(err, session.ErrPoolExhausted):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Not enough unique questions remaining"})
	case errors.Is(err, narrative.ErrInvalidPresetQuestion):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid preset question number"})
	case errors.Is(err, narrative.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Message cannot be empty"})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "User not found"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "Internal server error"})
	}
}
