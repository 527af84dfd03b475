package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

// DefaultModel matches the model the support assistant is tuned against.
const DefaultModel = "gemma-3-27b-it"

// GeminiClient calls the Gemini API through the official SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed provider client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends the assembled turns to the provider and returns the answer
// text. Errors are returned raw; classification happens in the dispatcher.
func (c *GeminiClient) Generate(ctx context.Context, turns []prompt.Turn) (string, error) {
	contents := make([]*genai.Content, len(turns))
	for i, turn := range turns {
		var role genai.Role = genai.RoleUser
		if turn.Role == prompt.RoleModel {
			role = genai.RoleModel
		}
		contents[i] = genai.NewContentFromText(turn.Text, role)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("provider returned an empty response")
	}
	return text, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}
