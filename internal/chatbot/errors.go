package chatbot

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when the message is blank after trimming.
	ErrEmptyMessage = errors.New("message is required")
	// ErrAssistantUnavailable is returned when no model backend was initialised.
	ErrAssistantUnavailable = errors.New("assistant not configured")
)

// UpstreamError wraps a failed model call. Its detail is for logs, not for callers.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
