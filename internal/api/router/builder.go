package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"
	"DBDashboard/internal/pkg/metrics"
	ws "DBDashboard/internal/websocket"
)

// Builder provides a fluent interface for constructing a router
type Builder struct {
	router    *Router
	wsHandler *ws.Handler
	server    *http.Server

	// detach removes the session listeners installed by the builder
	detach []func()
}

// NewBuilder creates a new router builder around a running session
func NewBuilder(cfg *config.Config, session *dashboard.Session) *Builder {
	m := metrics.New(cfg.AppName)

	wsHandler := ws.NewHandler(originChecker(cfg.API.CORS))
	wsHandler.OnClientCountChange(m.SetWebSocketClients)

	r := New(cfg, session, m, wsHandler)
	srv := cfg.Server
	b := &Builder{
		router:    r,
		wsHandler: wsHandler,
		server: &http.Server{
			Addr:           srv.Address(),
			Handler:        r,
			ReadTimeout:    time.Duration(srv.ReadTimeout) * time.Second,
			WriteTimeout:   time.Duration(srv.WriteTimeout) * time.Second,
			IdleTimeout:    time.Duration(srv.IdleTimeout) * time.Second,
			MaxHeaderBytes: srv.MaxHeaderBytes,
		},
	}

	b.detach = append(b.detach,
		session.Subscribe(func(event dashboard.Event, _ dashboard.Snapshot) {
			m.ObserveTransition(event.Name())
		}),
		wsHandler.Attach(session),
	)

	return b
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	b.router.Initialize()
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// Start runs the HTTP server until Shutdown is called
func (b *Builder) Start() error {
	logger.Info("Starting HTTP server", logger.String("address", b.server.Addr))
	if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start HTTP server", logger.Err(err))
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and disconnects WebSocket clients
func (b *Builder) Shutdown(ctx context.Context) error {
	for _, detach := range b.detach {
		detach()
	}
	b.detach = nil

	b.wsHandler.CloseAll()

	if err := b.server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", logger.Err(err))
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
