package tutor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/padhai/internal/llm"
)

func TestAsk_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Break revision into 45-minute blocks."),
	})
	svc := NewService(mock, DefaultConfig())

	answer, fromLLM, err := svc.Ask(t.Context(), "How should I revise for my physics exam?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !fromLLM {
		t.Error("expected answer from LLM")
	}
	if answer != "Break revision into 45-minute blocks." {
		t.Errorf("answer = %q", answer)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if req.Schema != nil {
		t.Error("tutor answers are plain text, not structured")
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "How should I revise for my physics exam?" {
		t.Errorf("messages = %+v", req.Messages)
	}
}

func TestAsk_CarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("First answer.")},
		llm.MockResponse{Content: json.RawMessage("Second answer.")},
	)
	svc := NewService(mock, DefaultConfig())

	if _, _, err := svc.Ask(t.Context(), "first question"); err != nil {
		t.Fatalf("first ask: %v", err)
	}
	if _, _, err := svc.Ask(t.Context(), "second question"); err != nil {
		t.Fatalf("second ask: %v", err)
	}

	req := mock.Calls[1]
	if len(req.Messages) != 3 {
		t.Fatalf("second call messages = %d, want 3 (prior exchange + new question)", len(req.Messages))
	}
	if req.Messages[0].Content != "first question" {
		t.Errorf("history[0] = %q", req.Messages[0].Content)
	}
	if req.Messages[1].Role != llm.RoleAssistant || req.Messages[1].Content != "First answer." {
		t.Errorf("history[1] = %+v", req.Messages[1])
	}
}

func TestAsk_HistoryCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 1

	var responses []llm.MockResponse
	for i := 0; i < 4; i++ {
		responses = append(responses, llm.MockResponse{Content: json.RawMessage("a")})
	}
	mock := llm.NewMockProvider(responses...)
	svc := NewService(mock, cfg)

	for _, q := range []string{"q1", "q2", "q3", "q4"} {
		if _, _, err := svc.Ask(t.Context(), q); err != nil {
			t.Fatalf("ask %s: %v", q, err)
		}
	}

	last := mock.Calls[len(mock.Calls)-1]
	// One prior exchange (two messages) plus the new question.
	if len(last.Messages) != 3 {
		t.Errorf("messages = %d, want 3 with MaxHistory=1", len(last.Messages))
	}
	if last.Messages[0].Content != "q3" {
		t.Errorf("oldest retained = %q, want q3", last.Messages[0].Content)
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, _, err := svc.Ask(t.Context(), "   "); err == nil {
		t.Fatal("expected error for empty question")
	}
}

func TestAsk_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("request timed out"),
	})
	svc := NewService(mock, DefaultConfig())

	answer, fromLLM, err := svc.Ask(t.Context(), "I keep forgetting formulas")
	if err != nil {
		t.Fatalf("ask should degrade, not fail: %v", err)
	}
	if fromLLM {
		t.Error("expected fallback answer on provider failure")
	}
	if !strings.Contains(answer, "Spaced repetition") {
		t.Errorf("expected memorization guidance, got %q", answer)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestAsk_NilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	answer, fromLLM, err := svc.Ask(t.Context(), "How do I make a study plan?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if fromLLM {
		t.Error("expected fallback answer")
	}
	if !strings.Contains(strings.ToLower(answer), "plan") {
		t.Errorf("expected planning guidance, got %q", answer)
	}
}

func TestFallbackAnswer(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"how to focus while studying", "timer"},
		{"I keep forgetting formulas", "Spaced repetition"},
		{"tips for exam day", "active recall"},
		{"what is photosynthesis", "Configure an API key"},
	}

	for _, tt := range tests {
		got := FallbackAnswer(tt.question)
		if !strings.Contains(got, tt.want) {
			t.Errorf("FallbackAnswer(%q) = %q, want substring %q", tt.question, got, tt.want)
		}
	}
}
