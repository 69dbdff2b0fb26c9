package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/estatehub/viewings-api/internal/api/handler"
	"github.com/estatehub/viewings-api/internal/api/middleware"
	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
	"github.com/estatehub/viewings-api/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Auth         ports.AuthService
	Properties   ports.PropertyService
	Features     ports.PropertyFeatureService
	Appointments ports.AppointmentService
	Activity     ports.ActivityService
	// Recorder receives appointment activity after successful mutations.
	Recorder  handler.ActivityRecorder
	Readiness map[string]handlers.Checker

	JWTSecret   string
	AuthLimiter *middleware.RateLimiter
	Logger      zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "viewings",
		Registerer: registerer,
	}))

	// --- Ops endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/auth")
	if deps.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(deps.AuthLimiter, deps.Logger))
	}
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleAgent, domain.RoleClient)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleAgent)

	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	v1.POST("/properties", propertyHandler.Create, staff)
	v1.GET("/properties/:propertyId", propertyHandler.Get)
	v1.PATCH("/properties/:propertyId", propertyHandler.Update, staff)
	v1.DELETE("/properties/:propertyId", propertyHandler.Delete, staff)

	if deps.Features != nil {
		featureHandler := handler.NewFeatureHandler(deps.Features)
		features := v1.Group("/properties/:propertyId/features")
		features.POST("", featureHandler.Create, staff)
		features.GET("", featureHandler.List)
		features.GET("/:id", featureHandler.Get)
		features.PATCH("/:id", featureHandler.Update, staff)
		features.DELETE("/:id", featureHandler.Delete, staff)
	}

	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments, deps.Recorder)
	appts := v1.Group("/properties/:propertyId/appointments")
	appts.POST("", appointmentHandler.Create, anyRole)
	appts.GET("", appointmentHandler.List)
	appts.GET("/:id", appointmentHandler.Get)
	appts.PATCH("/:id", appointmentHandler.Update, anyRole)
	appts.DELETE("/:id", appointmentHandler.Remove, anyRole)
	if deps.Activity != nil {
		appts.GET("/:id/history", handler.NewActivityHandler(deps.Activity).History)
	}

	v1.GET("/agents/:agentId/appointments", appointmentHandler.ListByAgent)

	return e
}

// requestLogger writes one structured access log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
