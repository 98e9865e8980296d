// ABOUTME: Response DTOs for the extraction endpoint
// ABOUTME: Field order matches the JSON envelope clients depend on

package responses

import "net/http"

// Static messages for failures that carry no caller-facing detail
const (
	MessageNotFound      = "Unable to find video URL"
	MessageInternalError = "An error occurred while processing the request"
	MessageRateLimited   = "Too many requests. Please try again later"
)

// Author is the uploader of the video
type Author struct {
	Name string `json:"name"`
}

// VideoData is the normalized payload of a successful extraction
type VideoData struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Video     string `json:"video"`
	Music     string `json:"music"`
	Source    string `json:"source"`
}

// SuccessResponse is the 200 envelope
type SuccessResponse struct {
	Status bool      `json:"status"`
	Code   int       `json:"code"`
	Author Author    `json:"author"`
	Data   VideoData `json:"data"`
}

// ErrorResponse is the envelope for every non-200 status.
// Error carries the underlying cause and is only set for 500.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// NewErrorResponse builds an error envelope without an underlying cause
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		Status:  false,
		Code:    code,
		Message: message,
	}
}

// NewInternalErrorResponse builds the 500 envelope carrying err's message
func NewInternalErrorResponse(err error) ErrorResponse {
	resp := NewErrorResponse(http.StatusInternalServerError, MessageInternalError)
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
