package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/regulanikhitha/CHATBOT-AI/internal/models"
	"github.com/regulanikhitha/CHATBOT-AI/internal/services"
)

func TestSystemHandler_Health_Unconfigured(t *testing.T) {
	gemini := services.NewGeminiService("", "gemini-1.5-flash-latest")
	h := &SystemHandler{gemini: gemini, maxMessageLen: 1000}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected status 'healthy', got %q", resp.Status)
	}
	if resp.APIConfigured {
		t.Fatal("expected api_configured to be false without a key")
	}
	if resp.Timestamp == 0 {
		t.Fatal("expected a non-zero timestamp")
	}
}

func TestSystemHandler_Health_Configured(t *testing.T) {
	gemini := services.NewGeminiService("test-key", "gemini-1.5-flash-latest")
	defer gemini.Close()
	h := &SystemHandler{gemini: gemini, maxMessageLen: 1000}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.APIConfigured {
		t.Fatal("expected api_configured to be true with a key")
	}
}

func TestSystemHandler_ClientConfig(t *testing.T) {
	gemini := services.NewGeminiService("", "gemini-1.5-flash-latest")
	h := &SystemHandler{gemini: gemini, maxMessageLen: 1000}

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := httptest.NewRecorder()
	h.ClientConfig(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp models.ClientConfig
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.MaxMessageLength != 1000 {
		t.Fatalf("expected max_message_length 1000, got %d", resp.MaxMessageLength)
	}
	if resp.Features.Streaming || resp.Features.FileUpload || resp.Features.ImageGeneration {
		t.Fatalf("expected all feature flags off, got %+v", resp.Features)
	}
}
