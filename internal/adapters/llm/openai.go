// Package llm adapts an OpenAI-compatible chat model to the completion port.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const temperature float32 = 0.25

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Provider implements ports.Completion on top of an eino chat model.
type Provider struct {
	chat model.BaseChatModel
}

// New returns nil, nil when no API key is configured so callers can leave
// enrichment switched off.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, nil
	}
	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return &Provider{chat: chat}, nil
}

// NewWithModel wraps an existing chat model.
func NewWithModel(chat model.BaseChatModel) *Provider { return &Provider{chat: chat} }

func (p *Provider) Complete(ctx context.Context, instruction, input string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(instruction),
		schema.UserMessage(input),
	}
	resp, err := p.chat.Generate(ctx, messages, model.WithTemperature(temperature))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Content, nil
}
