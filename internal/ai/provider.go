package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Provider executes one text-generation call against a named model.
// Implementations must return the provider's error text unmodified so the
// gateway can classify failures.
type Provider interface {
	Generate(ctx context.Context, model, prompt, apiKey string) (string, error)
}

// GeminiProvider calls the Google Gemini API. A client is constructed per
// call because the credential may be request-scoped.
type GeminiProvider struct{}

func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{}
}

func (p *GeminiProvider) Generate(ctx context.Context, model, prompt, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return "", fmt.Errorf("gemini: failed to create client: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("gemini: model returned an empty response")
	}
	return text, nil
}
