package services

import (
	"context"
	"sync"
	"time"
)

// scriptedReply is one canned outcome for a GenerateText call.
type scriptedReply struct {
	text string
	err  error
}

// fakeLLM replays scripted replies in order and repeats the last one once exhausted.
type fakeLLM struct {
	mu      sync.Mutex
	replies []scriptedReply
	prompts []string
	calls   int
}

func newFakeLLM(replies ...scriptedReply) *fakeLLM {
	return &fakeLLM{replies: replies}
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	idx := f.calls
	f.calls++
	if idx >= len(f.replies) {
		idx = len(f.replies) - 1
	}
	reply := f.replies[idx]
	return reply.text, reply.err
}

func (f *fakeLLM) ProviderName() string {
	return "fake"
}

func (f *fakeLLM) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeLLM) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func ok(text string) scriptedReply {
	return scriptedReply{text: text}
}

func fail(err error) scriptedReply {
	return scriptedReply{err: err}
}

func newTestExtractor(llm LLMService) *Extractor {
	return NewExtractor(llm, 0.3, 5*time.Second)
}
