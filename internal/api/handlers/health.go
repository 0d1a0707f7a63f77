package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vacancy-utils/internal/cache"
	"vacancy-utils/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports whether the service can take traffic. The
// pipeline is in-process and always ready; the cache is optional and only
// reported, never a reason to fail readiness.
func ReadinessHandler(resultCache *cache.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cacheState := "disabled"
		if resultCache != nil {
			cacheState = "ok"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":      "ok",
				"pipeline": "ok",
				"cache":    cacheState,
			},
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}
