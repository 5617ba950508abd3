// Package api serves the documentation REST interface.
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

const defaultAddr = ":8080"

// Config controls API server startup.
type Config struct {
	HTTPAddr string
}

// Server hosts the REST interface over a documentation store.
type Server struct {
	cfg     Config
	handler http.Handler
}

// NewServer wires the route table over the given store.
func NewServer(cfg Config, store storage.Store) *Server {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		cfg.HTTPAddr = defaultAddr
	}
	h := &handler{store: store}
	return &Server{
		cfg:     cfg,
		handler: traceRequests(h.routes()),
	}
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe runs the HTTP server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	log.Printf("api server listening at %s", s.cfg.HTTPAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown api server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve api: %w", err)
		}
		return nil
	}
}

// traceRequests opens one span per request. The span is a no-op unless a
// tracer provider has been installed.
func traceRequests(next http.Handler) http.Handler {
	tracer := otel.Tracer("dokuhilfe/api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
