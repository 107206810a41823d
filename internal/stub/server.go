// Package stub serves a stand-in for the candidate tracking endpoint so the
// track probe can be exercised without the real service.
package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	Logger *zap.Logger

	views atomic.Int64
}

func NewServer(l *zap.Logger) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/candidate-auth/track-view/{id}", s.handleTrackView)

	return r
}

// Views is the number of accepted tracking calls since start.
func (s *Server) Views() int64 { return s.views.Load() }

type trackPayload struct {
	CandidateID     int    `json:"candidateId"`
	InteractionType string `json:"interactionType"`
}

func (s *Server) handleTrackView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad"})
		return
	}

	var p trackPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.CandidateID <= 0 || p.InteractionType == "" {
		s.Logger.Info("track_view_rejected", zap.Int("id", id))
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad"})
		return
	}

	n := s.views.Add(1)
	s.Logger.Info("track_view",
		zap.Int("id", id),
		zap.Int("candidate_id", p.CandidateID),
		zap.String("interaction_type", p.InteractionType),
		zap.Int64("total", n),
	)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
