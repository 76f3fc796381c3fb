package handlers

import (
	"net/http"
	"time"

	"github.com/regulanikhitha/CHATBOT-AI/internal/models"
	"github.com/regulanikhitha/CHATBOT-AI/internal/services"
)

type SystemHandler struct {
	gemini        *services.GeminiService
	maxMessageLen int
}

func NewSystemHandler(gemini *services.GeminiService, maxMessageLen int) *SystemHandler {
	return &SystemHandler{
		gemini:        gemini,
		maxMessageLen: maxMessageLen,
	}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().Unix(),
		APIConfigured: h.gemini.Configured(),
	})
}

// ClientConfig tells the frontend which limits and features apply.
func (h *SystemHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ClientConfig{
		MaxMessageLength: h.maxMessageLen,
		Features: models.ClientFeatures{
			Streaming:       false,
			FileUpload:      false,
			ImageGeneration: false,
		},
	})
}
