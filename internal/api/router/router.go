package router

import (
	"net/http"
	"time"

	dashboardHandlers "DBDashboard/internal/api/handlers/dashboard"
	"DBDashboard/internal/api/middleware"
	"DBDashboard/internal/api/router/routes/auth"
	dashboardRoutes "DBDashboard/internal/api/router/routes/dashboard"
	"DBDashboard/internal/api/router/routes/websocket"
	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"
	"DBDashboard/internal/pkg/metrics"
	ws "DBDashboard/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router encapsulates the HTTP router functionality
type Router struct {
	config           *config.Config
	engine           *gin.Engine
	session          *dashboard.Session
	metrics          *metrics.Metrics
	wsHandler        *ws.Handler
	dashboardHandler *dashboardHandlers.Handler
}

// New creates a new router instance with the given configuration
func New(cfg *config.Config, session *dashboard.Session, m *metrics.Metrics, wsHandler *ws.Handler) *Router {
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		config:           cfg,
		engine:           gin.New(),
		session:          session,
		metrics:          m,
		wsHandler:        wsHandler,
		dashboardHandler: dashboardHandlers.NewHandler(cfg, session, m),
	}
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() *Router {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.metrics))

	if r.config.API.CORS.Enabled {
		r.engine.Use(cors.New(corsConfig(r.config.API.CORS)))
	}

	if r.config.API.Auth.Enabled {
		r.engine.Use(middleware.JWTAuthMiddleware(r.config.API.Auth.JWTSecret))
		registrar := &auth.AuthRegistrar{}
		if err := registrar.Register(r.engine, r.config); err != nil {
			logger.Error("Failed to register auth routes", logger.Err(err))
		}
	}

	r.registerAPIRoutes()
	r.registerWebSocketRoutes()
	r.registerRootAPIEndpoint()

	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return r
}

func (r *Router) registerAPIRoutes() {
	dashboardRoutes.RegisterRoutes(r.engine, r.dashboardHandler)
}

func (r *Router) registerWebSocketRoutes() {
	websocket.RegisterWebSocketRoutes(r.engine, r.wsHandler, r.session)
}

// registerRootAPIEndpoint provides health and metrics endpoints
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     r.config.AppName,
			"version": "1.0",
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if !r.session.IsRunning() {
			status = "stopped"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":            status,
			"websocket_clients": r.wsHandler.ClientCount(),
		})
	})

	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.DefaultConfig()
	if len(c.AllowedOrigins) == 0 || contains(c.AllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowedOrigins
	}
	if len(c.AllowedMethods) > 0 {
		cfg.AllowMethods = c.AllowedMethods
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// originChecker limits WebSocket upgrades to the configured CORS origins
func originChecker(c config.CORSConfig) func(r *http.Request) bool {
	if !c.Enabled || len(c.AllowedOrigins) == 0 || contains(c.AllowedOrigins, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || contains(c.AllowedOrigins, origin)
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
