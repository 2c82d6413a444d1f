package doubt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/padhai/internal/llm"
	"github.com/abhisek/padhai/internal/store"
)

// Config holds doubt solving settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for doubt solving.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Service solves doubts. The extractor and history repo are optional:
// without an extractor image inputs are rejected, without a repo solved
// doubts are not recorded. A nil or failing provider falls back to
// generic guidance.
type Service struct {
	provider  llm.Provider
	extractor TextExtractor
	doubts    store.DoubtRepo
	cfg       Config
}

// NewService creates a doubt solving service.
func NewService(provider llm.Provider, extractor TextExtractor, doubts store.DoubtRepo, cfg Config) *Service {
	return &Service{provider: provider, extractor: extractor, doubts: doubts, cfg: cfg}
}

// Solve answers a doubt step by step. The second return value reports
// whether the solution came from the LLM (true) or the built-in fallback.
func (s *Service) Solve(ctx context.Context, in Input) (*Solution, bool, error) {
	in.Question = strings.TrimSpace(in.Question)
	if in.Question == "" && in.ImagePath == "" && in.ExtractedText == "" {
		return nil, false, fmt.Errorf("provide a question or an image")
	}

	extracted := strings.TrimSpace(in.ExtractedText)
	if in.ImagePath != "" && extracted == "" {
		if s.extractor == nil {
			return nil, false, fmt.Errorf("image input needs a Gemini API key for text extraction")
		}
		var err error
		extracted, err = s.extractor.Extract(llm.WithPurpose(ctx, "ocr"), in.ImagePath)
		if err != nil {
			return nil, false, fmt.Errorf("extract question from image: %w", err)
		}
		if extracted == "" && in.Question == "" {
			return nil, false, fmt.Errorf("no question text found in %s", in.ImagePath)
		}
	}

	if s.provider == nil {
		return fallbackSolution(in), false, nil
	}

	sol, model, err := s.generate(ctx, in, extracted)
	if err != nil {
		// Provider failures (including malformed responses) degrade to
		// generic guidance rather than aborting the solve.
		return fallbackSolution(in), false, nil
	}

	s.record(ctx, in, extracted, sol, model)
	return sol, true, nil
}

func (s *Service) generate(ctx context.Context, in Input, extracted string) (*Solution, string, error) {
	ctx = llm.WithPurpose(ctx, "doubt-solver")

	req := llm.Request{
		System: solverSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSolverUserMessage(in, extracted)},
		},
		Schema:      SolutionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("solve doubt: %w", err)
	}

	var sol Solution
	if err := json.Unmarshal(resp.Content, &sol); err != nil {
		return nil, "", fmt.Errorf("parse solution: %w", err)
	}
	return &sol, resp.Model, nil
}

// record appends the solved doubt to history, best effort.
func (s *Service) record(ctx context.Context, in Input, extracted string, sol *Solution, model string) {
	if s.doubts == nil {
		return
	}

	question := in.Question
	if question == "" {
		question = extracted
	}

	solMap, err := solutionToMap(sol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode doubt for history: %v\n", err)
		return
	}

	rec := store.DoubtRecord{
		Question:      question,
		ExtractedText: extracted,
		Subject:       in.Subject,
		Language:      in.Language,
		Solution:      solMap,
		Model:         model,
	}
	if err := s.doubts.Append(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record doubt: %v\n", err)
	}
}

func solutionToMap(sol *Solution) (map[string]any, error) {
	b, err := json.Marshal(sol)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
