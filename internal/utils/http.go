package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// ActionErrorResponse maps a failed user action to a status code. Backend
// rejections keep their status and detail text.
func ActionErrorResponse(c echo.Context, err error) error {
	var httpErr *httpclient.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return ErrorResponseHandler(c, httpErr.StatusCode, httpErr.Error())
	case errors.Is(err, apperrors.ErrFixUnavailable),
		errors.Is(err, apperrors.ErrPreconditionFailed):
		return ErrorResponseHandler(c, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	default:
		return ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
}
