package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/server/failure"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/readings"
)

// maxBodyBytes bounds a single reading payload.
const maxBodyBytes = 64 << 10

// writeFunc performs the one write statement of an endpoint.
type writeFunc[T any] func(repo readings.Repository, ctx context.Context, payload T) error

// guarded puts the authenticated pipeline in front of write:
// lease a connection, authenticate on it, decode the body, write.
// Each step runs only after the previous one succeeded.
func guarded[T any](s *Server, op string, write writeFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := runGuarded(s, w, r, op, write); err != nil {
			s.writeFailure(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func runGuarded[T any](s *Server, w http.ResponseWriter, r *http.Request, op string, write writeFunc[T]) error {
	ctx := r.Context()

	lease, err := dbx.Acquire(ctx, s.pool)
	if err != nil {
		return failure.NewDb("acquire connection", err)
	}
	defer lease.Release()

	if err := s.authn.Authenticate(ctx, lease, r.Header); err != nil {
		return err
	}

	var payload T
	if err := decodeJSON(w, r, &payload); err != nil {
		return failure.NewBadRequest(err)
	}

	if err := write(s.repos.Readings(lease), ctx, payload); err != nil {
		return failure.NewDb(op, err)
	}
	return nil
}

// errTrailingData rejects bodies with anything but whitespace after the payload.
var errTrailingData = errors.New("unexpected data after JSON payload")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
