package middleware

import (
	"log/slog"

	"bitefeed/config"
	deliverycontext "bitefeed/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware attaches a request-scoped logger carrying the request ID
// so usecases log with request correlation.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle injects the request ID and the request-scoped logger into the
// request context.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
