package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxPromptLength is the hard cap on prompt size, matching the frontend limit.
const MaxPromptLength = 2000

type Message struct {
	ID        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Tokens    int       `json:"tokens"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateRequest is the payload sent to the generate endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// StatsResponse summarizes everything stored during this process lifetime.
type StatsResponse struct {
	Messages    int `json:"messages"`
	TotalTokens int `json:"total_tokens"`
}
