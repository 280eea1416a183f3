package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/mailscout"
	"github.com/gin-gonic/gin"
)

// Server defaults.
const (
	DefaultAddr            = ":5001"
	DefaultReadTimeout     = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRateBurst       = 5
)

// Config holds the server settings.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string

	// APIToken, when set, must be sent in the X-API-KEY header of every
	// crawl request. Empty disables authentication.
	APIToken string

	// Concurrency bounds simultaneous crawls within one batch request.
	Concurrency int

	// RateLimit is the per-client request rate on the crawl endpoint in
	// requests per second. Zero disables throttling.
	RateLimit float64
	RateBurst int

	// RateIdleTTL is how long an idle client's bucket is kept. Zero means
	// DefaultClientIdleTTL.
	RateIdleTTL time.Duration

	ReadTimeout     time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.RateBurst == 0 {
		c.RateBurst = DefaultRateBurst
	}
}

// Server exposes a mailscout.CrawlService over HTTP.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
	config Config

	crawls  mailscout.CrawlService
	limiter *ClientLimiter
}

// NewServer creates a server with routes and middleware installed.
// The crawl service must be safe for concurrent use; every request runs
// its crawl on its own goroutine.
func NewServer(cfg Config, crawls mailscout.CrawlService, logger *slog.Logger) *Server {
	cfg.SetDefaults()

	s := &Server{
		router: gin.New(),
		logger: logger,
		config: cfg,
		crawls: crawls,
	}
	if cfg.RateLimit > 0 {
		s.limiter = NewClientLimiter(cfg.RateLimit, cfg.RateBurst, cfg.RateIdleTTL)
	}

	// Recovery first to catch panics, then request ID so the access log
	// line carries it.
	s.router.Use(recoveryMiddleware(logger))
	s.router.Use(requestIDMiddleware())
	s.router.Use(loggerMiddleware(logger))

	s.router.GET("/health", s.handleHealth)

	scrape := s.router.Group("/scrape")
	scrape.Use(authMiddleware(cfg.APIToken))
	if s.limiter != nil {
		scrape.Use(rateLimitMiddleware(s.limiter, logger))
	}
	scrape.POST("", s.handleScrape)

	s.server = &http.Server{
		Addr:        cfg.Addr,
		Handler:     s.router,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
		// No write timeout: a crawl legitimately runs for minutes.
	}

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting HTTP server",
		"addr", ln.Addr().String(),
		"auth", s.config.APIToken != "",
		"rate_limit", s.config.RateLimit,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", "timeout", s.config.ShutdownTimeout)
	}

	// The parent context is already done; shutdown needs a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}
