package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/tubenotes/internal/core/logging"
)

// Server runs the dev backend on a TCP address.
type Server struct {
	httpServer *http.Server
	addr       string
	log        zerolog.Logger
}

// NewServer creates a server for addr (e.g. "127.0.0.1:5000") serving store
// under prefix.
func NewServer(addr, prefix string, store *Store) *Server {
	return &Server{
		httpServer: &http.Server{
			Handler:           Setup(store, prefix),
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr: addr,
		log:  logging.Component("devserver"),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. ready, when
// non-nil, is called with the bound address once the listener is open.
func (s *Server) Run(ctx context.Context, ready func(addr string)) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	bound := listener.Addr().String()
	s.log.Info().Str("addr", bound).Msg("starting dev server")
	if ready != nil {
		ready(bound)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dev server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down dev server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
