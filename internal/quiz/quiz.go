package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Session is one quiz attempt over a drawn set of questions.
type Session struct {
	Questions []Question
	answers   []string
}

// NewSession draws up to count questions matching the filter, shuffled
// with the given source. A nil source leaves the bank order unchanged,
// which tests rely on.
func NewSession(bank *Bank, f Filter, count int, rng *rand.Rand) (*Session, error) {
	pool := bank.Select(f)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no questions match %s", describeFilter(f))
	}

	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	if count > 0 && count < len(pool) {
		pool = pool[:count]
	}

	return &Session{
		Questions: pool,
		answers:   make([]string, len(pool)),
	}, nil
}

// Answer records the student's answer ("A".."D", case-insensitive) for
// question index i.
func (s *Session) Answer(i int, answer string) error {
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("question index %d out of range", i)
	}
	answer = strings.ToUpper(strings.TrimSpace(answer))
	switch answer {
	case "A", "B", "C", "D":
		s.answers[i] = answer
		return nil
	default:
		return fmt.Errorf("answer %q is not A-D", answer)
	}
}

// QuestionResult is the outcome for one question.
type QuestionResult struct {
	Question Question
	Given    string
	Correct  bool
}

// Result summarizes a finished session.
type Result struct {
	Total     int
	Answered  int
	Correct   int
	Questions []QuestionResult
}

// Percent returns the score as a percentage of total questions.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Grade scores the session. Unanswered questions count as wrong.
func (s *Session) Grade() Result {
	res := Result{Total: len(s.Questions)}
	for i, q := range s.Questions {
		given := s.answers[i]
		correct := given == q.Correct
		if given != "" {
			res.Answered++
		}
		if correct {
			res.Correct++
		}
		res.Questions = append(res.Questions, QuestionResult{
			Question: q,
			Given:    given,
			Correct:  correct,
		})
	}
	return res
}

func describeFilter(f Filter) string {
	var parts []string
	if f.Class != "" {
		parts = append(parts, "class "+f.Class)
	}
	if f.Subject != "" {
		parts = append(parts, "subject "+f.Subject)
	}
	if f.Topic != "" {
		parts = append(parts, "topic "+f.Topic)
	}
	if f.Difficulty != "" {
		parts = append(parts, "difficulty "+f.Difficulty)
	}
	if len(parts) == 0 {
		return "the bank"
	}
	return strings.Join(parts, ", ")
}
