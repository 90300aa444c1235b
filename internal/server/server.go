package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/sammytumzy/TunmzyTech/internal/config"
	"github.com/sammytumzy/TunmzyTech/internal/handler"
	"github.com/sammytumzy/TunmzyTech/internal/middleware"
	"github.com/sammytumzy/TunmzyTech/internal/service"
)

type Server struct {
	echo           *echo.Echo
	sessionCfg     *config.Session
	statusHandler  *handler.StatusHandler
	authHandler    *handler.AuthHandler
	paymentHandler *handler.PaymentHandler
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	cfg *config.Config,
	logger zerolog.Logger,
	statusService service.StatusService,
	authService service.AuthService,
	paymentService service.PaymentService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // all origins, like the original deployment

	s := &Server{
		echo:           e,
		sessionCfg:     &cfg.Session,
		statusHandler:  handler.NewStatusHandler(statusService),
		authHandler:    handler.NewAuthHandler(authService),
		paymentHandler: handler.NewPaymentHandler(paymentService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("", s.statusHandler.Root)
	api.GET("/", s.statusHandler.Root)
	api.POST("/status", s.statusHandler.CreateStatusCheck)
	api.GET("/status", s.statusHandler.GetStatusChecks)

	api.POST("/auth/verify", s.authHandler.VerifyAuth)

	// -------- payments --------
	payments := api.Group("/payments", middleware.OptionalSession(s.sessionCfg))
	payments.POST("/approve", s.paymentHandler.ApprovePayment)
	payments.POST("/complete", s.paymentHandler.CompletePayment)
	payments.POST("/cancel", s.paymentHandler.CancelPayment)
	payments.POST("/error", s.paymentHandler.PaymentError)
	payments.GET("", s.paymentHandler.GetPayments)
	payments.GET("/:paymentId", s.paymentHandler.GetPayment)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
