package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/roomstats/internal/server/repositories/readings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the full router with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/ping", s.ping)

	r.Post("/stats", guarded(s, "insert stats", readings.Repository.InsertStats))
	r.Post("/stats2", guarded(s, "insert stats2", readings.Repository.InsertStats2))
	r.Post("/tabs", guarded(s, "insert tabs", readings.Repository.InsertTabs))

	return r
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
