package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stl-ops/dashboard/internal/pkg/logger"
)

const headerRequestID = "X-Request-Id"

// RequestIDMiddleware tags every request with an id, echoes it back in the
// response, and binds it to the request context so log lines correlate.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := ctx.Request().Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Response().Header().Set(headerRequestID, requestID)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), requestID)))

		return next(ctx)
	}
}
