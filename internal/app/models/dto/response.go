package dto

import (
	"time"

	"github.com/yigit/unidash/internal/app/models"
)

// ErrorCode is a stable, machine-readable companion to the error message
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"
	ErrorCodeForbidden          ErrorCode = "AUTH_009"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_004"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeTimeout        ErrorCode = "SRV_004"
)

// Response is the envelope of every API response. On failure Error holds the
// user-facing message and Data is absent.
type Response struct {
	Success    bool               `json:"success" example:"true"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Message    string             `json:"message,omitempty" example:"Enrolled successfully"`
	Error      string             `json:"error,omitempty" example:"Course is full"`
	Code       ErrorCode          `json:"code,omitempty" example:"RES_004"`
	Details    []FieldError       `json:"details,omitempty"`
	Timestamp  time.Time          `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"amount must be greater than 0"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}, message string) Response {
	return Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse wraps one page of data in a success envelope
func NewPaginatedResponse(data interface{}, pagination models.Pagination) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(code ErrorCode, message string) Response {
	return Response{
		Success:   false,
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithDetails attaches field errors to a failure envelope
func (r Response) WithDetails(details []FieldError) Response {
	r.Details = details
	return r
}
