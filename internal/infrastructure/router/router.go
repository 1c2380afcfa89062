package router

import (
	"net/http"

	"mission-service/internal/interface/api"
	"mission-service/pkg/logger"
	"mission-service/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Options holds the dependencies of the HTTP router
type Options struct {
	Logger         logger.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	Missions       *api.MissionHandler
	AllowOrigins   []string
}

// New builds the echo router serving the missions API, /health and /metrics
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(opts.Logger)

	allowOrigins := opts.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(opts.Logger, opts.Metrics))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}

	opts.Missions.Register(e.Group(api.MissionsPath))

	return e
}

// requestLogger logs every request and feeds the request metrics. Errors are
// handed to the error handler first so the logged status is the one sent.
func requestLogger(log logger.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if m != nil {
				route := v.RoutePath
				if route == "" {
					route = "unmatched"
				}
				m.ObserveRequest(v.Method, route, v.Status, v.Latency)
			}

			fields := []interface{}{
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warn("HTTP request failed", append(fields, "error", v.Error)...)
				return nil
			}
			log.Info("HTTP request", fields...)
			return nil
		},
	})
}
