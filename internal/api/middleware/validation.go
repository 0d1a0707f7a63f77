package middleware

import (
	"net/http"
	"time"

	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

const maxRequestBody = 1 << 20 // 1MB

// RequestValidation tags every request with an ID and rejects oversized
// POST bodies before they reach a handler.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost && c.Request().ContentLength > maxRequestBody {
				return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
					Error:     "request_too_large",
					Message:   "Request body too large",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
