// Package httpapi serves the credential operations as JSON over HTTP under
// /api/auth, next to the gRPC endpoint.
package httpapi

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/logging"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/dmitrijs2005/careerhub/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

type userSvc interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetCurrentUser(ctx context.Context, accessToken string) (*models.PublicUser, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type Server struct {
	address   string
	users     userSvc
	logger    logging.Logger
	rateLimit float64
}

// NewServer builds the HTTP API. rateLimit is requests per second per client
// IP; zero disables limiting.
func NewServer(a string, l logging.Logger, us userSvc, rateLimit float64) *Server {
	return &Server{
		address:   a,
		users:     us,
		logger:    l.With("module", "http_server"),
		rateLimit: rateLimit,
	}
}

// Echo returns a fully routed echo instance.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "http request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	if s.rateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(s.rateLimit),
				Burst:     max(1, int(math.Ceil(s.rateLimit*2))),
				ExpiresIn: 3 * time.Minute,
			},
		)))
	}

	e.GET("/health", s.health)

	g := e.Group("/api/auth")
	g.POST("/register", s.register)
	g.POST("/login", s.login)
	g.GET("/user", s.currentUser)
	g.POST("/refresh", s.refresh)
	g.POST("/logout", s.logout)

	return e
}

func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	e := s.Echo()
	e.Listener = lis

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
