package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/soar/padkeys/internal/config"
	"github.com/soar/padkeys/internal/device"
	"github.com/soar/padkeys/internal/engine"
	"github.com/soar/padkeys/internal/fallback"
	"github.com/soar/padkeys/internal/hub"
	"github.com/soar/padkeys/internal/logging"
	"github.com/soar/padkeys/internal/scancode"
	"github.com/soar/padkeys/internal/server"
	"github.com/soar/padkeys/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		_, _ = os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	// Synthesized events flow through one buffered channel to the
	// diagnostics broadcaster. Drop when full rather than blocking the
	// polling worker.
	events := make(chan scancode.Event, 64)
	sink := func(ev scancode.Event) {
		select {
		case events <- ev:
		default:
		}
	}

	backend, backendName, injector, cleanup := selectBackend(cfg, logger, sink)
	defer cleanup()

	backend.Start()

	h := hub.NewHub(logger)
	go h.Run()

	status := func() hub.Status {
		return hub.Status{
			Backend:    backendName,
			Devices:    backend.DeviceCount(),
			HasDevices: backend.HasDevices(),
			Native:     backend.NativeAvailable(),
		}
	}
	broadcaster := hub.NewBroadcaster(h, events, status)
	go broadcaster.Run()

	srv := server.New(logger, h, broadcaster, injector, minifiedStatusPage(), cfg.Addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	url := pageURL(cfg.Addr)
	logger.Info("padkeys started", "backend", backendName, "diagnostics", url)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(logger, url, func() {
				close(shutdownRequested)
			})
			t.Run(nil)
		}()
	} else {
		logger.Info("press Ctrl+C to exit")
	}

	select {
	case <-sigCh:
		logger.Info("shutting down")
	case <-shutdownRequested:
		logger.Info("shutdown requested from tray")
	case err := <-serverErrCh:
		logger.Error("HTTP server error", "error", err)
	}

	backend.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("padkeys stopped")
}

// selectBackend picks the input backend once at startup. "sdl" forces the
// native path even with zero devices; "auto" degrades to the keyboard
// fallback when the native layer is unavailable or finds no gamepads.
func selectBackend(cfg *config.Config, logger *slog.Logger, sink scancode.Sink) (engine.Backend, string, hub.Injector, func()) {
	if cfg.Backend != "fallback" {
		provider, err := device.NewSDLProvider(logger)
		if err != nil {
			if cfg.Backend == "sdl" {
				logger.Error("native device layer unavailable", "error", err)
				os.Exit(1)
			}
			logger.Warn("native device layer unavailable, using keyboard fallback", "error", err)
		} else {
			devices, err := provider.Enumerate()
			if err != nil {
				logger.Warn("device enumeration failed", "error", err)
			}
			pads := device.FilterGamepads(logger, devices)
			if len(pads) > 0 || cfg.Backend == "sdl" {
				poller := engine.NewPoller(logger, pads, sink, cfg.PollInterval)
				return poller, "sdl", nil, provider.Close
			}
			provider.Close()
			logger.Warn("no gamepads found, using keyboard fallback")
		}
	}
	fb := fallback.New(logger, sink)
	return fb, "fallback", fb, func() {}
}

func pageURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
