package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/roomstats/internal/server/failure"
	"github.com/go-chi/chi/v5/middleware"
)

// writeFailure logs err with its full cause and sends the generic response.
// Client-driven outcomes are logged at info level, everything else at error.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status, body := failure.Response(err)

	log := s.logger.With("request_id", middleware.GetReqID(ctx), "method", r.Method, "path", r.URL.Path)
	if failure.IsClientError(err) {
		log.Info(ctx, "request rejected", "status", status, "error", err)
	} else {
		log.Error(ctx, "request failed", "status", status, "error", err)
	}

	http.Error(w, body, status)
}
