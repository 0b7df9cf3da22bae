package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	s := NewMessageStore()

	msg := s.Create("What is Go?", "A programming language.")

	if msg.ID == uuid.Nil {
		t.Error("Expected a non-nil message ID")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if msg.Prompt != "What is Go?" {
		t.Errorf("Expected prompt to round-trip, got %q", msg.Prompt)
	}
}

func TestCreateTokenEstimate(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected int
	}{
		{"empty response", "", 0},
		{"below one token", "abc", 0},
		{"exact multiple", "12345678", 2},
		{"rounds down", "123456789", 2},
	}

	s := NewMessageStore()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := s.Create("prompt", tc.response)
			if msg.Tokens != tc.expected {
				t.Errorf("Expected %d tokens for %q, got %d", tc.expected, tc.response, msg.Tokens)
			}
		})
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewMessageStore()

	for i := 0; i < 5; i++ {
		s.Create(fmt.Sprintf("prompt %d", i), "response")
	}

	msgs := s.List()
	if len(msgs) != 5 {
		t.Fatalf("Expected 5 messages, got %d", len(msgs))
	}
	for i, msg := range msgs {
		if msg.Prompt != fmt.Sprintf("prompt %d", i) {
			t.Errorf("Message %d out of order: got prompt %q", i, msg.Prompt)
		}
	}
}

func TestGetReturnsStoredMessage(t *testing.T) {
	s := NewMessageStore()
	created := s.Create("hello", "world")

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Expected ID %s, got %s", created.ID, got.ID)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewMessageStore()

	if _, err := s.Get(uuid.New()); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	s := NewMessageStore()
	if s.Count() != 0 {
		t.Errorf("Expected empty store, got %d", s.Count())
	}

	s.Create("a", "b")
	s.Create("c", "d")
	if s.Count() != 2 {
		t.Errorf("Expected 2 messages, got %d", s.Count())
	}
}
