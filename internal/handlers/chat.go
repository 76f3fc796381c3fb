package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/regulanikhitha/CHATBOT-AI/internal/models"
)

type ChatHandler struct {
	generator     replyGenerator
	maxMessageLen int
}

// replyGenerator is the part of the Gemini service the chat handler uses.
type replyGenerator interface {
	GenerateReply(ctx context.Context, message string) (string, error)
}

func NewChatHandler(generator replyGenerator, maxMessageLen int) *ChatHandler {
	return &ChatHandler{
		generator:     generator,
		maxMessageLen: maxMessageLen,
	}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	if utf8.RuneCountInString(message) > h.maxMessageLen {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", fmt.Sprintf("Message is too long (max %d characters)", h.maxMessageLen), r))
		return
	}

	reply, err := h.generator.GenerateReply(r.Context(), message)
	if err != nil {
		handleRelayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Reply:     reply,
		Timestamp: time.Now().Unix(),
	})
}
