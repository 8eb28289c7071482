package azure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/crossfn/crossfn/core/config"
)

// ErrHostAlreadyRunning is returned when Start is called twice.
var ErrHostAlreadyRunning = errors.New("custom handler host is already running")

// HostConfig holds custom handler host configuration. The Functions
// runtime sets FUNCTIONS_CUSTOMHANDLER_PORT to the port the handler
// must listen on.
type HostConfig struct {
	Port            string        `env:"FUNCTIONS_CUSTOMHANDLER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HOST_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HOST_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HOST_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Host is the HTTP server a custom handler runs behind the Functions
// runtime. Safe for concurrent use.
type Host struct {
	mu      sync.Mutex
	cfg     HostConfig
	logger  *slog.Logger
	server  *http.Server
	running bool
}

// HostOption configures a Host during creation.
type HostOption func(*Host)

// WithLogger sets a custom logger for host lifecycle events.
func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHost creates a Host from configuration.
// Defaults to a no-op logger.
func NewHost(cfg HostConfig, opts ...HostOption) *Host {
	h := &Host{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewHostFromEnv creates a Host configured from the environment,
// picking up the port the Functions runtime assigns through
// FUNCTIONS_CUSTOMHANDLER_PORT.
func NewHostFromEnv(opts ...HostOption) (*Host, error) {
	var cfg HostConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewHost(cfg, opts...), nil
}

// Start serves handler on the configured port and blocks until the
// context is canceled or the server fails. Cancellation triggers a
// graceful shutdown bounded by the configured timeout.
func (h *Host) Start(ctx context.Context, handler http.Handler) error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return ErrHostAlreadyRunning
	}
	h.running = true
	h.server = &http.Server{
		Addr:         ":" + h.cfg.Port,
		Handler:      handler,
		ReadTimeout:  h.cfg.ReadTimeout,
		WriteTimeout: h.cfg.WriteTimeout,
	}
	h.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		h.logger.InfoContext(ctx, "starting custom handler host", "port", h.cfg.Port)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
		return err
	case <-ctx.Done():
		if err := h.Stop(); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// Stop gracefully shuts down the host using the configured timeout.
// Returns immediately if the host is not running.
func (h *Host) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running || h.server == nil {
		return nil
	}

	h.logger.Info("shutting down custom handler host", "timeout", h.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ShutdownTimeout)
	defer cancel()

	err := h.server.Shutdown(shutdownCtx)
	h.running = false
	return err
}
