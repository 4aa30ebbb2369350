package http

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterHandlers binds every operation of openapi.yaml to s.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/login", s.Login)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/courier", s.AssignCourier)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/stats", s.GetCourierStats)
	api.PUT("/tracking/selection", s.SelectOrder)
	api.DELETE("/tracking/selection", s.ClearSelection)
	api.GET("/tracking/map", s.GetMapView)
}

// NewEcho builds the HTTP server: request logging to logger, panic
// recovery, goccy JSON and request validation against openapi.yaml.
func NewEcho(ctx context.Context, s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "http_server")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))
	e.Use(validator)

	RegisterHandlers(e, s)
	return e, nil
}
