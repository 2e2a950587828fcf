package dto

import "time"

// APIResponse is the envelope returned by every JSON route
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Inmate removed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Count     *int         `json:"count,omitempty" example:"3"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewDataResponse wraps a row set. Nil slices are rendered as empty arrays.
func NewDataResponse[T any](rows []T) APIResponse {
	if rows == nil {
		rows = []T{}
	}
	return APIResponse{
		Success:   true,
		Data:      rows,
		Timestamp: time.Now(),
	}
}

// NewItemResponse wraps a single object
func NewItemResponse(item interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      item,
		Timestamp: time.Now(),
	}
}

// NewCountedDataResponse wraps a row set together with its length
func NewCountedDataResponse[T any](rows []T) APIResponse {
	resp := NewDataResponse(rows)
	count := len(rows)
	resp.Count = &count
	return resp
}

// NewCountResponse carries a bare count
func NewCountResponse(count int) APIResponse {
	return APIResponse{
		Success:   true,
		Count:     &count,
		Timestamp: time.Now(),
	}
}

// NewResultResponse reports the outcome of a write
func NewResultResponse(success bool, message string) APIResponse {
	return APIResponse{
		Success:   success,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// HealthStatus is served by /health
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"connected"`
}
