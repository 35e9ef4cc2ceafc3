package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the standard success envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse sends a 200 with the standard envelope.
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 with the standard envelope.
func CreatedResponse(c echo.Context, message string, data interface{}) error {
	return SuccessResponse(c, http.StatusCreated, message, data)
}

// BadRequestResponse sends a 400 with the error envelope.
func BadRequestResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// UnauthorizedResponse sends a 401 with the error envelope.
func UnauthorizedResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// NotFoundResponse sends a 404 with the error envelope.
func NotFoundResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// InternalServerErrorResponse sends a 500 with the error envelope.
func InternalServerErrorResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// ServiceUnavailableResponse sends a 503 with the error envelope.
func ServiceUnavailableResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
