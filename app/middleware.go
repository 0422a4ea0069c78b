package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLoggerMiddleware tags every request with a generated id and logs
// method, path, status and latency once the handler chain returns.
func (app *Application) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		app.Logger.Info("request",
			"id", requestID,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"latency", time.Since(start),
		)

		return err
	}
}
