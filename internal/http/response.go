package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pantrystack/pantry-tracker/internal/http/apierr"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	respondJSON(logger, w, r, res.StatusCode, res)
}
