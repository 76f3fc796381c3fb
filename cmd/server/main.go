package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/regulanikhitha/CHATBOT-AI/internal/config"
	"github.com/regulanikhitha/CHATBOT-AI/internal/handlers"
	"github.com/regulanikhitha/CHATBOT-AI/internal/router"
	"github.com/regulanikhitha/CHATBOT-AI/internal/services"
)

func main() {
	log.Println("🚀 Starting Chatbot AI...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	defer geminiService.Close()

	if cfg.GeminiConfigured() {
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("⚠ GEMINI_API_KEY not set (chat requests will fail until configured)")
	}

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService, cfg.MaxMessageLength)
	systemHandler := handlers.NewSystemHandler(geminiService, cfg.MaxMessageLength)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, systemHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // long enough for a full generation
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chatbot AI ready on http://localhost:%s (%s)", cfg.Port, cfg.Env)
	log.Printf("  Chat UI: http://localhost:%s", cfg.Port)
	log.Printf("  API:     http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
