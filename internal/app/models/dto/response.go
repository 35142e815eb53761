package dto

import "time"

// APIResponse is the standard response envelope for all endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-14T12:01:05.123Z"`
}

// CountResponse wraps a single aggregate count
type CountResponse struct {
	Count int64 `json:"count" example:"3"`
}
