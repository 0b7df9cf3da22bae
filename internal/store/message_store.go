package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"genbox-backend/internal/models"
)

var ErrNotFound = errors.New("message not found")

// MessageStore keeps every generated prompt/response pair for the process
// lifetime. Records are append-only; nothing is ever updated or deleted.
type MessageStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*models.Message
	ordered []*models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		byID: make(map[uuid.UUID]*models.Message),
	}
}

// Create assigns a fresh ID and timestamp, inserts the record and returns it.
// The token count is a rough estimate of ~4 characters per token.
func (s *MessageStore) Create(prompt, response string) *models.Message {
	msg := &models.Message{
		ID:        uuid.New(),
		Prompt:    prompt,
		Response:  response,
		Tokens:    len(response) / 4,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[msg.ID] = msg
	s.ordered = append(s.ordered, msg)
	return msg
}

// List returns all messages in insertion order.
func (s *MessageStore) List() []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Message, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Get looks up a single message by ID.
func (s *MessageStore) Get(id uuid.UUID) (*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return msg, nil
}

// Count reports how many messages have been stored so far.
func (s *MessageStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}
