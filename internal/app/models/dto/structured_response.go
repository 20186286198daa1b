package dto

import "time"

// StructuredResponse provides a base structured API response with nested objects
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-10-15T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewRecoveredResponse wraps data that was loaded with a recoverable error.
// The request itself succeeded, so the status stays 200, but Success is false
// and the error is attached alongside whatever data could be loaded.
func NewRecoveredResponse(data interface{}, detail *ErrorDetail) StructuredResponse {
	return StructuredResponse{
		Success:   false,
		Message:   detail.Message,
		Data:      data,
		Error:     detail,
		Timestamp: time.Now(),
	}
}
