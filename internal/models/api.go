package models

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
	APIConfigured bool   `json:"api_configured"`
}

// ClientConfig tells the frontend which limits and features apply.
type ClientConfig struct {
	MaxMessageLength int            `json:"max_message_length"`
	Features         ClientFeatures `json:"features"`
}

type ClientFeatures struct {
	Streaming       bool `json:"streaming"`
	FileUpload      bool `json:"file_upload"`
	ImageGeneration bool `json:"image_generation"`
}
