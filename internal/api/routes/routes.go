package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"vacancy-utils/internal/api/handlers"
	"vacancy-utils/internal/api/middleware"
	"vacancy-utils/internal/cache"
	"vacancy-utils/internal/config"
	"vacancy-utils/internal/ingest"
	"vacancy-utils/internal/pipeline"
	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, resolver *ingest.Resolver, pipe *pipeline.Pipeline, resultCache *cache.ResultCache) {
	e.HTTPErrorHandler = httpErrorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Pipeline.Timeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(resultCache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/analyze", handlers.AnalyzeHandler(resolver, pipe, resultCache))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Vacancy Need-Analysis",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

// httpErrorHandler renders every error echo surfaces as an ErrorResponse.
// Handler-level rejections answer for themselves; this covers routing
// errors and anything a handler lets escape.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	requestID, _ := c.Get("request_id").(string)

	var apperr *utils.CustomError
	switch e := err.(type) {
	case *utils.CustomError:
		apperr = e
	case *echo.HTTPError:
		apperr = &utils.CustomError{Code: e.Code, Message: fmt.Sprintf("%v", e.Message)}
	default:
		apperr = utils.NewInternalServerError("Internal server error")
	}

	kind := "request_failed"
	if apperr.Code >= http.StatusInternalServerError {
		kind = "internal_error"
	}
	_ = c.JSON(apperr.Code, models.ErrorResponse{
		Error:     kind,
		Message:   apperr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
