// Package httpapi is the HTTP face of roomstats: the ingestion endpoints, the
// authenticated pipeline in front of them and the server lifecycle.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/logging"
	"github.com/dmitrijs2005/roomstats/internal/server/auth"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/repomanager"
	"golang.org/x/sync/errgroup"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

type Server struct {
	address           string
	pool              dbx.Pool
	repos             repomanager.RepositoryManager
	authn             *auth.Authenticator
	logger            logging.Logger
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

type Option func(*Server)

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readHeaderTimeout = d
		}
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// NewServer wires the pipeline. pool is shared by all requests; every request
// leases one connection from it for its whole lifetime.
func NewServer(addr string, l logging.Logger, pool dbx.Pool, repos repomanager.RepositoryManager, opts ...Option) *Server {
	s := &Server{
		address:           addr,
		pool:              pool,
		repos:             repos,
		authn:             auth.NewAuthenticator(repos),
		logger:            l.With("module", "http_server"),
		readHeaderTimeout: defaultReadHeaderTimeout,
		shutdownTimeout:   defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
