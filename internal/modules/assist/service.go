// README: AI charging assistant backed by Gemini.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// Service relays chat messages to Gemini with the platform system prompt.
type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewService initialises the Gemini client. apiKey comes from the
// environment; an empty key should be handled by the caller (the endpoint is
// disabled entirely).
func NewService(ctx context.Context, apiKey string) (*Service, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrDisabled
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(1000)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	return &Service{client: client, model: model}, nil
}

// Close releases the underlying client.
func (s *Service) Close() {
	s.client.Close()
}

// Chat sends one user message and returns the assistant reply. The relay is
// stateless; conversation memory lives with the caller.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("gemini: empty message")
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		parts = append(parts, string(txt))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(parts, "\n"), nil
}
