package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"genbox-backend/internal/models"
	"genbox-backend/internal/store"
)

type MessageHandler struct {
	store *store.MessageStore
}

func NewMessageHandler(messageStore *store.MessageStore) *MessageHandler {
	return &MessageHandler{store: messageStore}
}

// List returns every stored message in insertion order.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages := h.store.List()
	if messages == nil {
		messages = []*models.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid message ID", r))
		return
	}

	message, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Message not found", r))
		return
	}

	writeJSON(w, http.StatusOK, message)
}

// Stats reports totals across everything stored during this process lifetime.
func (h *MessageHandler) Stats(w http.ResponseWriter, r *http.Request) {
	messages := h.store.List()

	totalTokens := 0
	for _, msg := range messages {
		totalTokens += msg.Tokens
	}

	writeJSON(w, http.StatusOK, models.StatsResponse{
		Messages:    len(messages),
		TotalTokens: totalTokens,
	})
}
