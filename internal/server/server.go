// Package server exposes the computation core over a local HTTP JSON
// API: the profile lives in a project directory and every request
// recomputes from it, so the server holds no state of its own.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova/internal/compute"
	"github.com/sankalpsthakur/astronova/internal/config"
	"github.com/sankalpsthakur/astronova/pkg/chart"
	"github.com/sankalpsthakur/astronova/pkg/dasha"
	"github.com/sankalpsthakur/astronova/pkg/ephem"
	"github.com/sankalpsthakur/astronova/pkg/profile"
)

// Server serves chart computations for one project directory.
type Server struct {
	projectPath string
	cfg         *config.Config
}

// New creates a server for the given project directory.
func New(projectPath string, cfg *config.Config) *Server {
	return &Server{projectPath: projectPath, cfg: cfg}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/dasha", s.handleDasha)
	mux.HandleFunc("GET /api/dasha/active", s.handleDashaActive)
	mux.HandleFunc("GET /api/numerology", s.handleNumerology)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/synastry", s.handleSynastry)

	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	log.Printf("astronova server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) loadProfile(w http.ResponseWriter) (*profile.Profile, bool) {
	prof, report, err := compute.LoadAndValidate(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	if !report.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return nil, false
	}
	return prof, true
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	prof, ok := s.loadProfile(w)
	if !ok {
		return
	}
	c, err := compute.Chart(s.cfg, prof)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, c)
}

func (s *Server) handleDasha(w http.ResponseWriter, _ *http.Request) {
	prof, ok := s.loadProfile(w)
	if !ok {
		return
	}
	tl, err := compute.Dasha(s.cfg, prof)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, tl)
}

func (s *Server) handleDashaActive(w http.ResponseWriter, r *http.Request) {
	prof, ok := s.loadProfile(w)
	if !ok {
		return
	}
	target := time.Now().UTC()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("parsing at: %w", err))
			return
		}
		target = parsed
	}

	tl, err := compute.Dasha(s.cfg, prof)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	path, err := tl.FindActive(target)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, map[string]any{"target": target, "path": path})
}

func (s *Server) handleNumerology(w http.ResponseWriter, _ *http.Request) {
	prof, ok := s.loadProfile(w)
	if !ok {
		return
	}
	grid, err := compute.Numerology(prof)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, map[string]any{"date": prof.Date, "grid": grid})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	_, report, err := compute.LoadAndValidate(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, report)
}

// handleSynastry scores the project profile against a partner profile
// posted as the request body.
func (s *Server) handleSynastry(w http.ResponseWriter, r *http.Request) {
	prof, ok := s.loadProfile(w)
	if !ok {
		return
	}

	var partner profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parsing partner profile: %w", err))
		return
	}
	if report := profile.Validate(&partner); !report.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	result, err := compute.Synastry(s.cfg, prof, &partner)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, result)
}

// statusFor maps core error kinds onto HTTP statuses.
func statusFor(err error) int {
	var cfgErr *chart.ConfigurationError
	switch {
	case errors.Is(err, ephem.ErrNotAvailable):
		return http.StatusFailedDependency
	case errors.Is(err, dasha.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
