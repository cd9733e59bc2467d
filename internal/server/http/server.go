// Package http exposes the reservation API over HTTP using gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cmartinr/reservasalas/internal/logging"
	"github.com/cmartinr/reservasalas/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address      string
	router       *gin.Engine
	logger       logging.Logger
	users        *services.UserService
	reservations *services.ReservationService
	jwtSecret    []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, rs *services.ReservationService, secretKey string) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		address:      address,
		router:       router,
		logger:       l.With("module", "http_server"),
		users:        us,
		reservations: rs,
		jwtSecret:    []byte(secretKey),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.POST("/reservas", s.authRequired(), s.handleCrearReserva)
	}
}

// Handler returns the root handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
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
