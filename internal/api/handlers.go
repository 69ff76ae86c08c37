package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"insiderwatch/internal/export"
	"insiderwatch/internal/logger"
	"insiderwatch/internal/metrics"
	"insiderwatch/internal/store"
	"insiderwatch/internal/views"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	rows := views.Alerts(s.st, r.URL.Query().Get("q"))
	metrics.ObserveView(metrics.ViewAlerts)
	writeJSON(w, map[string]any{"alerts": rows})
}

func (s *Server) handleAlertsExport(w http.ResponseWriter, r *http.Request) {
	rows := views.Alerts(s.st, r.URL.Query().Get("q"))
	metrics.ObserveExport(metrics.ViewAlerts)
	writeCSV(w, "alerts.csv", export.AlertsDocument(rows))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("severity")
	if level == "" {
		level = "all"
	}
	rows := views.Timeline(s.st, level)
	metrics.ObserveView(metrics.ViewTimeline)
	// An empty events list is a valid state, never an error.
	writeJSON(w, map[string]any{"events": rows, "filters": views.TimelineFilters})
}

func (s *Server) handleUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{"users": s.st.Users()})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	view, ok := s.profileView(w, r)
	if !ok {
		return
	}
	metrics.ObserveView(metrics.ViewProfile)
	writeJSON(w, view)
}

func (s *Server) handleProfileExport(w http.ResponseWriter, r *http.Request) {
	view, ok := s.profileView(w, r)
	if !ok {
		return
	}
	metrics.ObserveExport(metrics.ViewProfile)
	writeCSV(w, fmt.Sprintf("%s_profile.csv", view.User), export.ProfileDocument(view))
}

func (s *Server) profileView(w http.ResponseWriter, r *http.Request) (views.ProfileView, bool) {
	user := r.PathValue("user")
	view, err := views.Profile(s.st, user)
	if err != nil {
		var unknown *store.UnknownUserError
		if errors.As(err, &unknown) {
			writeError(w, http.StatusNotFound, err.Error())
			return views.ProfileView{}, false
		}
		logger.Errorf("profile view for %s: %v", user, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return views.ProfileView{}, false
	}
	return view, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeCSV(w http.ResponseWriter, filename, document string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write([]byte(document))
}
