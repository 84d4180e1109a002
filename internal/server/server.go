package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartcampus/campus-api/internal/ai"
	"github.com/smartcampus/campus-api/internal/auth"
	"github.com/smartcampus/campus-api/internal/config"
	"github.com/smartcampus/campus-api/internal/handlers"
	"github.com/smartcampus/campus-api/internal/logger"
	"github.com/smartcampus/campus-api/internal/services"
	"github.com/smartcampus/campus-api/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	store      store.Store
	completer  ai.Completer
}

// New creates a new server instance. The store handle may be nil when the
// document database never initialized; views answer "Database unavailable."
// in that case instead of the process refusing to start.
func New(cfg *config.Config, s store.Store, completer ai.Completer) *Server {
	return &Server{
		config:    cfg,
		store:     s,
		completer: completer,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	router.LoadHTMLGlob(s.config.Server.TemplatesGlob)

	// Session gate and services
	gate := auth.NewGate(
		s.config.Admin.Username,
		s.config.Admin.Password,
		s.config.Session.Secret,
		s.config.Session.TTL,
	)

	eventService := services.NewEventService(s.store, s.completer)
	recordService := services.NewRecordService(s.store)
	attendanceService := services.NewAttendanceService(s.store)

	// Handlers
	pageHandler := handlers.NewPageHandler(gate)
	authHandler := handlers.NewAuthHandler(gate)
	chatHandler := handlers.NewChatHandler(s.completer)
	eventHandler := handlers.NewEventHandler(eventService, gate)
	recordHandler := handlers.NewRecordHandler(recordService, gate)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, gate)

	// Operational surface
	registry := prometheus.NewRegistry()
	registry.MustRegister(requestCounter(router))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.GET("/healthz", func(c *gin.Context) {
		_, fallback := s.completer.(ai.Fallback)
		status := http.StatusOK
		if s.store == nil {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":      "ok",
			"store":       s.store != nil,
			"ai_fallback": fallback,
		})
	})

	s.setupRoutes(router, gate, pageHandler, authHandler, chatHandler, eventHandler, recordHandler, attendanceHandler)

	return router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(
	router *gin.Engine,
	gate *auth.Gate,
	pageHandler *handlers.PageHandler,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	eventHandler *handlers.EventHandler,
	recordHandler *handlers.RecordHandler,
	attendanceHandler *handlers.AttendanceHandler,
) {
	router.GET("/", pageHandler.Index)
	router.GET("/timetable", pageHandler.Timetable)
	router.GET("/get", chatHandler.Reply)

	admin := router.Group("/admin")
	{
		admin.GET("/login", authHandler.LoginPage)
		admin.POST("/login", authHandler.Login)
		admin.GET("/logout", authHandler.Logout)
	}

	events := router.Group("/events")
	{
		events.GET("", eventHandler.ListPage)
		events.POST("/register/:event_id", eventHandler.Register)

		privileged := events.Group("", gate.RequireAdmin())
		{
			privileged.POST("/create", eventHandler.Create)
			privileged.POST("/delete/:event_id", eventHandler.Delete)
			privileged.POST("/generate_summary", eventHandler.GenerateSummary)
			privileged.GET("/analyze_registrations/:event_id", eventHandler.AnalyzeRegistrations)
		}
	}

	router.GET("/circulars", recordHandler.Page(store.Circulars))
	router.POST("/circulars/update", gate.RequireAdmin(), recordHandler.Update(store.Circulars))

	router.GET("/results", recordHandler.Page(store.Results))
	router.POST("/results/update", gate.RequireAdmin(), recordHandler.Update(store.Results))

	router.GET("/attendance", attendanceHandler.Page)
	router.POST("/attendance/update", gate.RequireAdmin(), attendanceHandler.Update)
}

// requestLogger logs each request on completion, with the level chosen by the
// status class. Health and metrics probes are skipped.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		startTime := time.Now()
		c.Next()

		status := c.Writer.Status()
		logFn := logger.HTTP().Info
		if status >= 500 {
			logFn = logger.HTTP().Error
		} else if status >= 400 {
			logFn = logger.HTTP().Warn
		}

		logFn("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(startTime),
			"remote_addr", c.ClientIP(),
		)
	}
}

// requestCounter counts completed requests by method, route and status.
func requestCounter(router *gin.Engine) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_http_requests_total",
			Help: "Completed HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	router.Use(func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		counter.WithLabelValues(c.Request.Method, path, fmt.Sprint(c.Writer.Status())).Inc()
	})

	return counter
}
