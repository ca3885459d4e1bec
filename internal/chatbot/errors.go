package chatbot

import (
	"encoding/json"
	"fmt"
)

// APIError is returned when the backend responds with a non-2xx status.
// It carries the status code, the parsed error detail when the body is
// the backend's {"detail": "..."} shape, and the raw body otherwise.
type APIError struct {
	StatusCode int
	Detail     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Detail string `json:"detail"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	// Detail may be a non-string for validation errors; keep the raw
	// body in that case.
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Detail = errResp.Detail
	}

	return apiErr
}
