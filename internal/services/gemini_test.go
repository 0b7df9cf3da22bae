package services

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText_JoinsCandidateParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world.")},
				},
			},
		},
	}

	got := extractText(resp)
	if got != "Hello, world." {
		t.Errorf("Expected joined text, got %q", got)
	}
}

func TestExtractText_NilContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	if got := extractText(resp); got != "" {
		t.Errorf("Expected empty text for nil content, got %q", got)
	}
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &GenerationError{Message: "Gemini API error: connection refused", Err: cause}

	if err.Error() != "Gemini API error: connection refused" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped cause to be reachable via errors.Is")
	}
}
