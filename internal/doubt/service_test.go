package doubt

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/padhai/internal/llm"
	"github.com/abhisek/padhai/internal/store"
)

func validSolutionJSON() json.RawMessage {
	return json.RawMessage(`{
		"steps": [
			{
				"title": "Apply the quadratic formula",
				"explanation": "For x^2 - 5x + 6 = 0, a=1, b=-5, c=6.",
				"formula": "x = (5 +/- sqrt(25 - 24)) / 2"
			},
			{
				"title": "Simplify",
				"explanation": "The discriminant is 1, so the roots are (5+1)/2 and (5-1)/2."
			}
		],
		"finalAnswer": "x = 3 or x = 2",
		"difficulty": "easy",
		"relatedConcepts": ["factoring quadratics", "discriminant"]
	}`)
}

// memDoubtRepo is an in-memory DoubtRepo for tests.
type memDoubtRepo struct {
	records []store.DoubtRecord
}

func (m *memDoubtRepo) Append(_ context.Context, rec store.DoubtRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memDoubtRepo) Recent(_ context.Context, limit int) ([]store.DoubtRecord, error) {
	if limit > 0 && limit < len(m.records) {
		return m.records[len(m.records)-limit:], nil
	}
	return m.records, nil
}

// stubExtractor returns fixed text for any image.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func TestSolve_TextQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	repo := &memDoubtRepo{}
	svc := NewService(mock, nil, repo, DefaultConfig())

	sol, fromLLM, err := svc.Solve(t.Context(), Input{
		Question: "Solve x^2 - 5x + 6 = 0",
		Subject:  "Math",
	})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !fromLLM {
		t.Error("expected LLM solution")
	}
	if len(sol.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(sol.Steps))
	}
	if sol.Steps[0].Title != "Apply the quadratic formula" {
		t.Errorf("step title = %q", sol.Steps[0].Title)
	}
	if sol.FinalAnswer != "x = 3 or x = 2" {
		t.Errorf("final answer = %q", sol.FinalAnswer)
	}
	if sol.Difficulty != "easy" {
		t.Errorf("difficulty = %q", sol.Difficulty)
	}

	// Request shape.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "doubt-solution" {
		t.Error("expected the doubt-solution schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Solve x^2 - 5x + 6 = 0") {
		t.Error("expected question in user message")
	}
	if !strings.Contains(req.Messages[0].Content, "Subject: Math") {
		t.Error("expected subject in user message")
	}

	// Recorded in history.
	if len(repo.records) != 1 {
		t.Fatalf("recorded = %d doubts, want 1", len(repo.records))
	}
	if repo.records[0].Question != "Solve x^2 - 5x + 6 = 0" {
		t.Errorf("recorded question = %q", repo.records[0].Question)
	}
	if repo.records[0].Solution["finalAnswer"] != "x = 3 or x = 2" {
		t.Errorf("recorded solution = %v", repo.records[0].Solution)
	}
}

func TestSolve_ImageQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	repo := &memDoubtRepo{}
	extractor := &stubExtractor{text: "What is the LCM of 12 and 18?"}
	svc := NewService(mock, extractor, repo, DefaultConfig())

	_, _, err := svc.Solve(t.Context(), Input{ImagePath: "question.png"})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "What is the LCM of 12 and 18?") {
		t.Error("expected extracted text in user message")
	}

	if repo.records[0].Question != "What is the LCM of 12 and 18?" {
		t.Errorf("recorded question = %q, want the extracted text", repo.records[0].Question)
	}
	if repo.records[0].ExtractedText != "What is the LCM of 12 and 18?" {
		t.Errorf("recorded extracted text = %q", repo.records[0].ExtractedText)
	}
}

func TestSolve_PreExtractedTextSkipsOCR(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	repo := &memDoubtRepo{}
	extractor := &stubExtractor{text: "should not be called"}
	svc := NewService(mock, extractor, repo, DefaultConfig())

	_, _, err := svc.Solve(t.Context(), Input{
		ImagePath:     "question.png",
		ExtractedText: "Corrected: what is the LCM of 12 and 18?",
	})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Corrected: what is the LCM of 12 and 18?") {
		t.Error("expected the corrected text in user message")
	}
	if strings.Contains(req.Messages[0].Content, "should not be called") {
		t.Error("extractor ran despite pre-extracted text")
	}
	if repo.records[0].ExtractedText != "Corrected: what is the LCM of 12 and 18?" {
		t.Errorf("recorded extracted text = %q", repo.records[0].ExtractedText)
	}
}

func TestSolve_ImageWithoutExtractor(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, nil, DefaultConfig())

	_, _, err := svc.Solve(t.Context(), Input{ImagePath: "question.png"})
	if err == nil {
		t.Fatal("expected error when no extractor is configured")
	}
}

func TestSolve_EmptyInput(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, nil, DefaultConfig())

	if _, _, err := svc.Solve(t.Context(), Input{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSolve_EmptyExtraction(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &stubExtractor{text: ""}, nil, DefaultConfig())

	_, _, err := svc.Solve(t.Context(), Input{ImagePath: "blank.png"})
	if err == nil {
		t.Fatal("expected error when the image contains no question")
	}
}

func TestSolve_NilProviderFallsBack(t *testing.T) {
	repo := &memDoubtRepo{}
	svc := NewService(nil, nil, repo, DefaultConfig())

	sol, fromLLM, err := svc.Solve(t.Context(), Input{Question: "What is osmosis?"})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if fromLLM {
		t.Error("expected fallback solution")
	}
	if len(sol.Steps) == 0 {
		t.Error("expected fallback steps")
	}
	// Fallback answers are not recorded as solved doubts.
	if len(repo.records) != 0 {
		t.Errorf("recorded = %d doubts, want 0", len(repo.records))
	}
}

func TestSolve_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("request timed out"),
	})
	repo := &memDoubtRepo{}
	svc := NewService(mock, nil, repo, DefaultConfig())

	sol, fromLLM, err := svc.Solve(t.Context(), Input{Question: "What is osmosis?"})
	if err != nil {
		t.Fatalf("solve should degrade, not fail: %v", err)
	}
	if fromLLM {
		t.Error("expected fallback solution on provider failure")
	}
	if len(sol.Steps) == 0 {
		t.Error("expected fallback steps")
	}
	if len(repo.records) != 0 {
		t.Errorf("recorded = %d doubts, want 0", len(repo.records))
	}
}

func TestSolve_MalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json")})
	svc := NewService(mock, nil, nil, DefaultConfig())

	sol, fromLLM, err := svc.Solve(t.Context(), Input{Question: "q"})
	if err != nil {
		t.Fatalf("solve should degrade, not fail: %v", err)
	}
	if fromLLM || sol == nil {
		t.Error("expected fallback solution for a malformed response")
	}
}

func TestImageMIMEType(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"q.png", "image/png", false},
		{"q.JPG", "image/jpeg", false},
		{"q.jpeg", "image/jpeg", false},
		{"q.webp", "image/webp", false},
		{"q.gif", "", true},
		{"q", "", true},
	}

	for _, tt := range tests {
		got, err := imageMIMEType(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("imageMIMEType(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("imageMIMEType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
