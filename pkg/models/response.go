package models

import "time"

// AnalyzeResponse wraps a PipelineResult for the REST surface. Success means
// the request was processed structurally; a populated PipelineResult.Error
// still ships with Success true because the error is part of the data.
type AnalyzeResponse struct {
	Success        bool            `json:"success"`
	Result         *PipelineResult `json:"result,omitempty"`
	Cached         bool            `json:"cached,omitempty"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
