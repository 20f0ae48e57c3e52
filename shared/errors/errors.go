package errors

import "net/http"

// Error class codes shared by the chatbot APIs.
const (
	CodeBadRequest         = "bad_request"
	CodeServiceUnavailable = "service_unavailable"
	CodeUpstreamFailed     = "upstream_failed"
	CodeInternal           = "internal"
)

// ErrorResponse is the JSON error envelope. Reply carries text a chat UI can show as-is.
type ErrorResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply,omitempty"`
}

// ToStatusCode maps an error class code to an HTTP status.
func ToStatusCode(code string) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
