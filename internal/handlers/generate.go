package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"genbox-backend/internal/models"
)

type GenerateHandler struct {
	store  messageStore
	gemini textGenerator
	hub    broadcaster
}

// textGenerator is the external generation collaborator. Given a prompt it
// returns generated text or a descriptive error.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type messageStore interface {
	Create(prompt, response string) *models.Message
}

type broadcaster interface {
	BroadcastMessageCreated(msg *models.Message)
}

func NewGenerateHandler(store messageStore, gemini textGenerator, hub broadcaster) *GenerateHandler {
	return &GenerateHandler{
		store:  store,
		gemini: gemini,
		hub:    hub,
	}
}

func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Prompt is required", r))
		return
	}
	if len(prompt) > models.MaxPromptLength {
		msg := fmt.Sprintf("Prompt must be at most %d characters", models.MaxPromptLength)
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", msg, r))
		return
	}

	response, err := h.gemini.Generate(r.Context(), prompt)
	if err != nil {
		// A failed generation never reaches the store.
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", err.Error(), r))
		return
	}

	message := h.store.Create(prompt, strings.TrimSpace(response))

	if h.hub != nil {
		h.hub.BroadcastMessageCreated(message)
	}

	writeJSON(w, http.StatusOK, message)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
