package dto

import "time"

// ErrorDetails is the body of every error response.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// NewErrorDetails stamps an error body with the current time.
func NewErrorDetails(message, details string) ErrorDetails {
	return ErrorDetails{Timestamp: time.Now(), Message: message, Details: details}
}
