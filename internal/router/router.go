package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"genbox-backend/internal/handlers"
	"genbox-backend/internal/middleware"
	"genbox-backend/internal/websocket"
)

func New(
	generateHandler *handlers.GenerateHandler,
	messageHandler *handlers.MessageHandler,
	wsHub *websocket.Hub,
	generateRequestsPerMin int,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Generate rate limiter (per IP)
	generateLimiter := middleware.NewRateLimiter(generateRequestsPerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Generate Route ────
		r.Group(func(r chi.Router) {
			r.Use(generateLimiter.Middleware)
			r.Post("/generate", generateHandler.Generate)
		})

		// ──── Message Routes ────
		r.Get("/messages", messageHandler.List)
		r.Get("/messages/{id}", messageHandler.Get)
		r.Get("/stats", messageHandler.Stats)

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
