package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/regulanikhitha/CHATBOT-AI/internal/handlers"
	"github.com/regulanikhitha/CHATBOT-AI/internal/middleware"
	"github.com/regulanikhitha/CHATBOT-AI/internal/web"
)

func New(
	chatHandler *handlers.ChatHandler,
	systemHandler *handlers.SystemHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Unknown routes and wrong methods answer with the JSON envelope too
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", systemHandler.Health)
		r.Get("/config", systemHandler.ClientConfig)
		r.Post("/chat", chatHandler.Send)
	})

	// ──── Embedded Chat UI ────
	r.Get("/", web.Index)
	r.Handle("/static/*", web.StaticHandler())

	return r
}
