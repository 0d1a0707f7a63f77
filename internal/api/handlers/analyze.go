package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"vacancy-utils/internal/cache"
	"vacancy-utils/internal/ingest"
	"vacancy-utils/internal/logging"
	"vacancy-utils/internal/pipeline"
	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

var validate = validator.New()

// AnalyzeHandler runs the need-analysis pipeline over a vacancy source.
// Pipeline stage failures are data, not HTTP errors: the handler answers
// 200 with the failure captured in the result's Error field, and reserves
// 4xx for structurally invalid requests.
func AnalyzeHandler(resolver *ingest.Resolver, pipe *pipeline.Pipeline, resultCache *cache.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind analyze request", map[string]interface{}{"error": err.Error()})
			return rejectRequest(c, requestID, "invalid_request",
				utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Analyze request validation failed", map[string]interface{}{"error": err.Error()})
			return rejectRequest(c, requestID, "validation_failed",
				utils.NewValidationError(err.Error()))
		}

		raw, ok := rawInputFromRequest(req)
		if !ok {
			return rejectRequest(c, requestID, "invalid_request",
				utils.NewBadRequestError("Either content or url must be provided"))
		}

		requiredPaths := req.RequiredPaths
		if requiredPaths == nil {
			requiredPaths = models.DefaultRequiredPaths
		}

		logger.Info("Analyze request received", map[string]interface{}{
			"source_type": string(raw.SourceType),
		})

		ctx := c.Request().Context()

		var result models.PipelineResult
		cached := false

		resolved, err := resolver.Resolve(ctx, raw)
		if err != nil {
			logger.Warn("Source resolution failed, returning degraded result", map[string]interface{}{
				"error": err.Error(),
			})
			result = pipe.RunDegraded(err, requiredPaths)
		} else {
			digest := utils.ContentDigest(resolved.Content, requiredPaths)
			if hit, ok := resultCache.Get(ctx, digest); ok {
				result = *hit
				cached = true
			} else {
				result = pipe.Run(resolved, requiredPaths)
				resultCache.Set(ctx, digest, &result)
			}
		}

		logger.Info("Analyze request completed", map[string]interface{}{
			"processing_time": utils.FormatDuration(time.Since(startTime)),
			"confidence":      result.Validation.Confidence,
			"cached":          cached,
			"pipeline_error":  result.Error,
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:        true,
			Result:         &result,
			Cached:         cached,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// rejectRequest renders a structurally invalid request. Only pre-pipeline
// failures land here; stage failures travel inside the 200 result.
func rejectRequest(c echo.Context, requestID, kind string, apperr *utils.CustomError) error {
	return c.JSON(apperr.Code, models.ErrorResponse{
		Error:     kind,
		Message:   apperr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// rawInputFromRequest picks the source kind and content. A request carrying
// only a URL is treated as a url source; bare content defaults to text.
func rawInputFromRequest(req models.AnalyzeRequest) (models.RawInput, bool) {
	sourceType := req.SourceType
	content := req.Content

	if content == "" && req.URL != "" {
		sourceType = utils.GetStringOrDefault(sourceType, string(models.SourceURL))
		content = req.URL
	}
	if content == "" {
		return models.RawInput{}, false
	}
	sourceType = utils.GetStringOrDefault(sourceType, string(models.SourceText))
	return models.RawInput{SourceType: models.SourceType(sourceType), Content: content}, true
}
