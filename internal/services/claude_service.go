package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeService talks to the Anthropic Messages API.
type ClaudeService struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeService builds a client for model. Extra request options are
// passed to the SDK (tests point it at a local server).
func NewClaudeService(apiKey, model string, opts ...option.RequestOption) (*ClaudeService, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &ClaudeService{
		client: anthropic.NewClient(opts...),
		model:  anthropic.Model(model),
	}, nil
}

func (s *ClaudeService) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	maxTokens := int64(opts.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 300
	}
	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: claude: %w", err)
	}
	if resp == nil || len(resp.Content) == 0 {
		return "", errors.New("llm: claude: empty response")
	}

	var b strings.Builder
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("llm: claude: response has no text")
	}
	return strings.TrimSpace(b.String()), nil
}
