package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

func callErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, models.ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	httpErrorHandler(err, e.NewContext(req, rec))

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestErrorHandlerPlainError(t *testing.T) {
	rec, resp := callErrorHandler(t, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if resp.Error != "internal_error" {
		t.Errorf("Error = %q, want internal_error", resp.Error)
	}
	if resp.Message != "Internal server error" {
		t.Errorf("Message = %q, want the opaque internal message", resp.Message)
	}
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	rec, resp := callErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if resp.Error != "request_failed" {
		t.Errorf("Error = %q, want request_failed", resp.Error)
	}
}

func TestErrorHandlerCustomError(t *testing.T) {
	rec, resp := callErrorHandler(t, utils.NewUnsupportedSourceError("xml"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if resp.Message == "" {
		t.Error("Message is empty, want the source kind failure")
	}
}
