package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"landing-builder-backend/internal/ai"
	"landing-builder-backend/internal/blocks"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/schema"
	"landing-builder-backend/pkg/logger"
)

const defaultMaxAttempts = 3

// Generator is the model gateway surface the agent depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, userKey string) (string, error)
}

// Source records which path produced a result. The wire response is the same
// for all three, the source only feeds logs and metrics.
type Source string

const (
	SourceTemplates Source = "templates"
	SourceAI        Source = "ai"
	SourceFallback  Source = "fallback"
)

// Result is the outcome of one processed chat message.
type Result struct {
	Config      *models.LandingPage
	Explanation string
	Source      Source
}

// TerminalError is returned when every generation attempt failed and no
// template fallback was possible.
type TerminalError struct {
	Attempts int
	Last     string
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("não consegui gerar uma configuração válida após %d tentativas. Erro: %s", e.Attempts, e.Last)
}

// Agent turns chat messages into validated landing page documents. It prefers
// prebuilt templates for fresh pages, otherwise drives the model through a
// validate-and-retry loop and falls back to templates when the model cannot
// produce a valid document.
type Agent struct {
	gateway     Generator
	library     *blocks.Library
	maxAttempts int
}

func New(gateway Generator, library *blocks.Library) *Agent {
	return &Agent{
		gateway:     gateway,
		library:     library,
		maxAttempts: defaultMaxAttempts,
	}
}

// Process handles one user message against the current document (nil when the
// session has no page yet) and returns the new document with an explanation.
func (a *Agent) Process(ctx context.Context, message string, history []models.ChatMessage, current *models.LandingPage, userKey string) (*Result, error) {
	if current == nil {
		matches := a.library.Match(message)
		if len(matches) >= 2 {
			config, err := a.buildFromTemplates(matches, message)
			if err == nil {
				logger.Info("Built page from prebuilt blocks", map[string]interface{}{
					"blocks": len(matches),
				})
				return &Result{
					Config:      config,
					Explanation: fmt.Sprintf("Baseado em sua solicitação %q, criei uma landing page com %d seções pré-construídas.", message, len(matches)),
					Source:      SourceTemplates,
				}, nil
			}
			logger.Warn("Prebuilt block assembly failed, falling back to model", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	prompt := buildPrompt(message, history, current)

	var lastError string
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if lastError != "" {
			logger.Info("Retrying generation after validation error", map[string]interface{}{
				"attempt": attempt + 1,
			})
		}

		response, err := a.gateway.Generate(ctx, withFeedback(prompt, lastError), userKey)
		if err != nil {
			if errors.Is(err, ai.ErrCredentialRevoked) {
				return nil, err
			}
			lastError = err.Error()
			continue
		}

		config, explanation, err := a.parseResponse(response)
		if err != nil {
			lastError = err.Error()
			continue
		}

		return &Result{Config: config, Explanation: explanation, Source: SourceAI}, nil
	}

	logger.Error("Generation attempts exhausted", map[string]interface{}{
		"attempts": a.maxAttempts,
		"error":    lastError,
	})

	if fallback := a.library.Match(message); len(fallback) > 0 {
		config, err := a.buildFromTemplates(fallback, message)
		if err == nil {
			return &Result{
				Config:      config,
				Explanation: fmt.Sprintf("Devido a um erro no processamento, criei uma landing page com blocos pré-construídos baseados em sua solicitação: %q.", message),
				Source:      SourceFallback,
			}, nil
		}
	}

	return nil, &TerminalError{Attempts: a.maxAttempts, Last: lastError}
}

// parseResponse extracts the JSON envelope from the raw model output and
// validates the embedded document.
func (a *Agent) parseResponse(response string) (*models.LandingPage, string, error) {
	clean := extractJSON(response)

	var envelope map[string]any
	if err := json.Unmarshal([]byte(clean), &envelope); err != nil {
		return nil, "", fmt.Errorf("JSON Syntax Error: %w", err)
	}

	// The model may answer with a {plan, config} envelope or the bare
	// document itself.
	configRaw, ok := envelope["config"]
	if !ok || configRaw == nil {
		configRaw = envelope
	}

	explanation := "Atualizei a landing page."
	if plan, ok := envelope["plan"].(string); ok && plan != "" {
		explanation = plan
	} else if expl, ok := envelope["explanation"].(string); ok && expl != "" {
		explanation = expl
	}

	config, err := schema.Validate(configRaw)
	if err != nil {
		return nil, "", fmt.Errorf("Schema Validation Failed:\n%s", err.Error())
	}
	return config, explanation, nil
}

// buildFromTemplates assembles a complete page from matched templates with
// sequential section order.
func (a *Agent) buildFromTemplates(matches []blocks.Template, message string) (*models.LandingPage, error) {
	sections := make(models.SectionList, 0, len(matches))
	for i, tpl := range matches {
		order := i
		section, err := a.library.Instantiate(tpl, blocks.Overrides{Order: &order})
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	name := truncate(message, 50)
	if name == "" {
		name = "Nova Landing Page"
	}

	now := time.Now().UTC()
	return &models.LandingPage{
		ID:           uuid.New().String(),
		Name:         name,
		Sections:     sections,
		Design:       models.DefaultDesign(),
		Integrations: models.IntegrationConfig{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
