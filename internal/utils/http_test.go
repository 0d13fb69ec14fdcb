package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusOK, "Trip advanced", map[string]string{"status": "STARTED"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Trip advanced", resp.Message)
	assert.Equal(t, map[string]interface{}{"status": "STARTED"}, resp.Data)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "invalid body") }, http.StatusBadRequest, "invalid body"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"unavailable default", func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestActionErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "backend rejection keeps detail",
			err:        fmt.Errorf("transition trip 4: %w", &httpclient.HTTPError{StatusCode: http.StatusBadRequest, Detail: "Driver already has an active trip"}),
			wantStatus: http.StatusBadRequest,
			wantError:  "Driver already has an active trip",
		},
		{
			name:       "no fix",
			err:        apperrors.ErrFixUnavailable,
			wantStatus: http.StatusPreconditionFailed,
			wantError:  apperrors.ErrFixUnavailable.Error(),
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("create trip: %w", apperrors.ErrConflict),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not found",
			err:        apperrors.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "transport failure",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantError:  "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, ActionErrorResponse(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
