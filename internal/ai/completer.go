// Package ai wraps the hosted generative-language API behind a Completer that
// downstream views can always call: initialization failure degrades to a fixed
// fallback reply instead of an unusable handle.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/smartcampus/campus-api/internal/logger"
)

// Completer produces a text completion for a free-text prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// fallbackTemplate echoes the prompt so callers still get a text value when
// the live model never came up.
const fallbackTemplate = "Sorry, the live AI is currently offline due to a model error. You asked: %s"

// New builds a Gemini-backed completer, degrading to the fallback when the
// key is missing or the client cannot be constructed. It never fails.
func New(ctx context.Context, apiKey, model string) Completer {
	if apiKey == "" {
		logger.AI().Warn("GEMINI_API_KEY not set, completion adapter running in fallback mode")
		return Fallback{}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.AI().Error("Gemini client initialization failed, running in fallback mode", "error", err)
		return Fallback{}
	}

	logger.AI().Info("Gemini model initialized", "model", model)
	return &Gemini{client: client, model: model}
}

// Gemini calls the hosted Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty completion response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("completion response had no text parts")
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Fallback is the degraded completer used when the live model is unavailable.
// It always succeeds so every caller still receives a reply.
type Fallback struct{}

func (Fallback) Complete(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf(fallbackTemplate, prompt), nil
}
