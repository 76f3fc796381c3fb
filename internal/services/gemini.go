package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// generateRequest is the minimal request shape for the generateContent endpoint.
type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse is the minimal response shape returned by the
// generateContent endpoint.
type generateResponse struct {
	Candidates []struct {
		Content      *geminiContent `json:"content"`
		FinishReason string         `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*GeminiService)

func WithBaseURL(baseURL string) Option {
	return func(s *GeminiService) {
		s.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *GeminiService) {
		s.httpClient = httpClient
	}
}

// NewGeminiService creates the relay client. An empty API key yields an
// unconfigured service: the server still starts, and every relay call
// reports a ConfigError without ever contacting the upstream API.
func NewGeminiService(apiKey, modelName string, opts ...Option) *GeminiService {
	s := &GeminiService{
		apiKey:     strings.TrimSpace(apiKey),
		model:      modelName,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether an API key is present.
func (s *GeminiService) Configured() bool {
	return s.apiKey != ""
}

func (s *GeminiService) Close() {
	if s.httpClient != nil {
		s.httpClient.CloseIdleConnections()
	}
}

func (s *GeminiService) generateURL() string {
	base := strings.TrimRight(s.baseURL, "/")
	if base == "" {
		base = defaultGeminiBaseURL
	}
	return base + "/v1beta/models/" + s.model + ":generateContent"
}

// GenerateReply forwards a single user message to Gemini and returns the
// cleaned generated text. Exactly one upstream HTTP request is made per
// invocation; there are no retries and no timeout beyond the transport
// default.
func (s *GeminiService) GenerateReply(ctx context.Context, message string) (string, error) {
	if !s.Configured() {
		return "", &ConfigError{Message: "Gemini API key not configured"}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: message}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.generateURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	if err := googleapi.CheckResponse(res); err != nil {
		return "", classifyGeminiError(err)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", &TransportError{Err: err}
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &UpstreamError{Message: "Gemini returned a malformed response"}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &UpstreamError{Message: fmt.Sprintf("Gemini blocked the prompt (%s)", resp.PromptFeedback.BlockReason)}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != "" && cand.FinishReason != "STOP" {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := CleanMarkdown(extractText(&resp))
	if text == "" {
		return "", &UpstreamError{Message: "Gemini returned no generated text"}
	}

	return text, nil
}

// classifyGeminiError maps non-2xx upstream responses onto the relay error
// types so the handler can answer with the right status code.
func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &ConfigError{Message: "Gemini rejected the API key"}
		}
		msg := apiErr.Message
		if msg == "" {
			msg = "Gemini API request failed"
		}
		return &UpstreamError{StatusCode: apiErr.Code, Message: msg}
	}
	return &UpstreamError{Message: err.Error()}
}

func extractText(resp *generateResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				text.WriteString(part.Text)
			}
		}
	}
	return text.String()
}
