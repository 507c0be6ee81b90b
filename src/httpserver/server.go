// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/bfhl/src/config"
	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// shutdownTimeout bounds graceful shutdown once the run context is done.
const shutdownTimeout = 10 * time.Second

// Server is the HTTP front end of the dispatcher.
type Server struct {
	app        *fiber.App
	dispatcher *dispatch.Dispatcher
	log        logger.Logger
	addr       string
	bodyLimit  int
}

// New builds a Server with all routes registered. Nothing listens until
// [Server.Listen] or [Server.Run] is called.
func New(cfg *config.Config, d *dispatch.Dispatcher, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewJSONLogger(nil, true)
	}

	s := &Server{
		dispatcher: d,
		log:        log,
		addr:       cfg.Server.Addr,
		bodyLimit:  cfg.Server.BodyLimitBytes,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "bfhl",
		DisableStartupMessage: true,
		// Hard ceiling only; the configured limit is enforced per handler
		// so oversized bodies still get an envelope.
		BodyLimit:    max(4*s.bodyLimit, fiber.DefaultBodyLimit),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(s.requestID)
	s.app.Use(s.accessLog)
	// Inside accessLog so a recovered panic still gets an access line.
	s.app.Use(recover.New())
	s.registerRoutes()

	return s
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) registerRoutes() {
	s.app.Get("/health", s.handleHealth)
	s.app.Post("/bfhl", s.handleBFHL)

	// Must stay last.
	s.app.Use(func(c *fiber.Ctx) error { return fiber.ErrNotFound })
}

// Listen serves until the server is shut down.
func (s *Server) Listen() error {
	return s.app.Listen(s.addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// It returns the listen error if the server could not start.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen()
	}()

	s.log.Printf("HTTP server listening on %s", s.addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	case <-shutdownCtx.Done():
		return fmt.Errorf("HTTP server did not stop: %w", shutdownCtx.Err())
	}
	s.log.Printf("HTTP server stopped")
	return nil
}
