// Package tutor answers free-form study questions through the configured
// LLM provider, with canned guidance as a fallback when no provider is
// available or the provider fails.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/padhai/internal/llm"
)

// Config holds tutor generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxHistory caps how many prior exchanges are sent with each question.
	MaxHistory int
}

// DefaultConfig returns sensible defaults for tutoring.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		MaxHistory:  10,
	}
}

// Service answers study questions. A nil or failing provider is not an
// error; Ask then falls back to canned guidance.
type Service struct {
	provider llm.Provider
	cfg      Config
	history  []llm.Message
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Ask answers a question, carrying the conversation history of this
// service instance. The second return value reports whether the answer
// came from the LLM (true) or the built-in fallback (false).
func (s *Service) Ask(ctx context.Context, question string) (string, bool, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", false, fmt.Errorf("question must not be empty")
	}

	if s.provider == nil {
		return FallbackAnswer(question), false, nil
	}

	ctx = llm.WithPurpose(ctx, "tutor")

	messages := append(s.trimmedHistory(), llm.Message{
		Role:    llm.RoleUser,
		Content: question,
	})

	req := llm.Request{
		System:      tutorSystemPrompt,
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		// A flaky or unreachable provider should not break the study
		// session; degrade to canned guidance instead.
		return FallbackAnswer(question), false, nil
	}

	answer := strings.TrimSpace(string(resp.Content))
	s.history = append(s.history,
		llm.Message{Role: llm.RoleUser, Content: question},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)

	return answer, true, nil
}

// trimmedHistory returns the most recent history capped at MaxHistory
// exchanges (two messages per exchange).
func (s *Service) trimmedHistory() []llm.Message {
	maxMsgs := s.cfg.MaxHistory * 2
	if maxMsgs <= 0 || len(s.history) <= maxMsgs {
		return s.history
	}
	return s.history[len(s.history)-maxMsgs:]
}
