package services

import (
	"context"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
)

type fakeCompleter struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	opts    []CompletionOptions
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, opts CompletionOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.text, f.err
}

type fakeModel struct {
	reply string
	err   error
	got   []llms.MessageContent
}

func (m *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.got = msgs
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, opts...)
}

type callLog struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]int
}

func newCallLog() *callLog {
	return &callLog{calls: map[string]int{}, errs: map[string]int{}}
}

func (c *callLog) ObserveCall(name string, _ time.Time, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[name]++
	if err != nil {
		c.errs[name]++
	}
}
