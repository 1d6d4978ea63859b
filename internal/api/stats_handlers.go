package api

import (
	"net/http"
	"strconv"

	"github.com/unclip12/focusflow/internal/errors"
)

const defaultForecastDays = 7

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.StatsService.Summary(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	days := defaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("days", "must be an integer"))
			return
		}
		days = parsed
	}

	forecast, err := s.StatsService.Forecast(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, forecast)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.Ping != nil {
		if err := s.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
