package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/soar/padkeys/internal/hub"
)

// Server exposes the diagnostics surface: a WebSocket event stream and a
// small static status page.
type Server struct {
	logger      *slog.Logger
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	injector    hub.Injector
	page        []byte
	addr        string
	httpServer  *http.Server
}

func New(logger *slog.Logger, h *hub.Hub, b *hub.Broadcaster, injector hub.Injector, page []byte, addr string) *Server {
	return &Server{
		logger:      logger,
		hub:         h,
		broadcaster: b,
		injector:    injector,
		page:        page,
		addr:        addr,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.logger, s.hub, s.broadcaster, s.injector))

	// Static status page
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(s.page)
	})

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.logger.Info("HTTP server listening", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Info("shutting down HTTP server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
