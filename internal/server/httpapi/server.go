// Package httpapi exposes the REST surface: routing, request binding, auth
// enforcement, and translation of service errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
	"github.com/dmitrijs2005/linkhub/internal/server/links"
	"github.com/dmitrijs2005/linkhub/internal/server/profile"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	engine    *gin.Engine
	logger    logging.Logger
	users     *users.Service
	links     *links.Service
	profiles  *profile.Service
	jwtSecret []byte
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, ls *links.Service, ps *profile.Service) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		address:   cfg.EndpointAddr,
		engine:    gin.New(),
		logger:    l.With("module", "http_server"),
		users:     us,
		links:     ls,
		profiles:  ps,
		jwtSecret: []byte(cfg.SecretKey),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	s.registerRoutes()

	return s
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	if allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cfg
}

func (s *Server) registerRoutes() {

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", s.login)
			auth.GET("/me", s.requireAuth(), s.me)
			auth.PUT("/bio", s.requireAuth(), s.updateBio)
		}

		linkRoutes := api.Group("/links", s.requireAuth())
		{
			linkRoutes.POST("", s.createLink)
			linkRoutes.GET("", s.listLinks)
			linkRoutes.PUT("/:id", s.updateLink)
			linkRoutes.PATCH("/:id/toggle-visibility", s.toggleVisibility)
			linkRoutes.POST("/reorder", s.reorderLinks)
			linkRoutes.DELETE("/:id", s.deleteLink)
		}

		api.GET("/profile/:username", s.publicProfile)
	}
}

// Handler exposes the underlying engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
