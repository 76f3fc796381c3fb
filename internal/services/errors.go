package services

import "fmt"

// ConfigError means the Gemini credential is missing or was rejected.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UpstreamError means the Gemini API was reached but the exchange failed:
// a non-2xx status, a safety block, or an unusable response body.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini upstream error (status %d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// TransportError means the Gemini API could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
