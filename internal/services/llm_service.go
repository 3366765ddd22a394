package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrNoAPIKey is returned when an LLM client is built without credentials.
var ErrNoAPIKey = errors.New("llm: api key is empty")

// CompletionOptions tunes a single completion.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float64
}

// Completer turns a prompt into text. LLMService and ClaudeService implement it.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// CallObserver is told about every external call a service makes.
type CallObserver interface {
	ObserveCall(collaborator string, started time.Time, err error)
}

func observe(o CallObserver, name string, started time.Time, err error) {
	if o != nil {
		o.ObserveCall(name, started, err)
	}
}

// LLMService talks to Gemini through langchaingo.
type LLMService struct {
	Client llms.Model
	Model  string
}

// NewLLMService builds the Gemini client for model.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &LLMService{Client: llm, Model: model}, nil
}

func (s *LLMService) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	callOpts := []llms.CallOption{llms.WithTemperature(opts.Temperature)}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("llm: gemini: %w", err)
	}
	return strings.TrimSpace(resp), nil
}
