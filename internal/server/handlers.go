package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/claude/rollprep/internal/program"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state, err := s.svc.State(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Triage(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleGenerateWeek(w http.ResponseWriter, r *http.Request) {
	state, err := s.svc.GenerateWeek(r.Context())
	if errors.Is(err, program.ErrGenerationPending) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("generate week", "error", err)
		// Previous session list is still intact; the client shows a
		// transient notice and keeps rendering the old plan.
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":  err.Error(),
			"notice": "plan generation failed; your current week is unchanged",
		})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleLogSession(w http.ResponseWriter, r *http.Request) {
	var entry models.SessionLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	state, err := s.svc.LogSession(r.Context(), entry)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleQuickAction(w http.ResponseWriter, r *http.Request) {
	kind := engine.QuickAction(chi.URLParam(r, "kind"))

	state, err := s.svc.ApplyQuickAction(r.Context(), kind)
	if errors.Is(err, program.ErrUnknownAction) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleAdvanceWeek(w http.ResponseWriter, r *http.Request) {
	state, err := s.svc.AdvanceWeek(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	state, err := s.svc.UpdateProfile(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleUpdateReadiness(w http.ResponseWriter, r *http.Request) {
	var rd models.Readiness
	if err := json.NewDecoder(r.Body).Decode(&rd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	state, err := s.svc.UpdateReadiness(r.Context(), rd)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
