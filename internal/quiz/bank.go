// Package quiz loads a CSV question bank and runs scored practice quizzes.
package quiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Question is one multiple-choice question from the bank.
type Question struct {
	ID          string
	Class       string
	Subject     string
	Topic       string
	Difficulty  string
	Text        string
	Options     [4]string // A, B, C, D
	Correct     string    // "A".."D"
	Explanation string
}

// bankColumns is the required CSV header, in order.
var bankColumns = []string{
	"id", "class", "subject", "topic", "difficulty", "question_text",
	"option_a", "option_b", "option_c", "option_d",
	"correct_answer", "explanation",
}

// Bank is a loaded question bank.
type Bank struct {
	Questions []Question
}

// LoadBank reads a question bank from a CSV file.
func LoadBank(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	bank, err := ReadBank(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

// ReadBank parses a question bank from CSV data.
func ReadBank(r io.Reader) (*Bank, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var questions []Question
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		q, err := parseQuestion(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	return &Bank{Questions: questions}, nil
}

func checkHeader(header []string) error {
	if len(header) != len(bankColumns) {
		return fmt.Errorf("header has %d columns, want %d (%s)",
			len(header), len(bankColumns), strings.Join(bankColumns, ","))
	}
	for i, want := range bankColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseQuestion(rec []string) (Question, error) {
	q := Question{
		ID:          strings.TrimSpace(rec[0]),
		Class:       strings.TrimSpace(rec[1]),
		Subject:     strings.TrimSpace(rec[2]),
		Topic:       strings.TrimSpace(rec[3]),
		Difficulty:  strings.ToLower(strings.TrimSpace(rec[4])),
		Text:        strings.TrimSpace(rec[5]),
		Options:     [4]string{rec[6], rec[7], rec[8], rec[9]},
		Correct:     strings.ToUpper(strings.TrimSpace(rec[10])),
		Explanation: strings.TrimSpace(rec[11]),
	}

	if q.ID == "" {
		return q, fmt.Errorf("missing id")
	}
	if q.Text == "" {
		return q, fmt.Errorf("question %s: missing question_text", q.ID)
	}
	switch q.Correct {
	case "A", "B", "C", "D":
	default:
		return q, fmt.Errorf("question %s: correct_answer %q is not A-D", q.ID, rec[10])
	}
	return q, nil
}

// Filter selects questions from the bank. Empty fields match everything.
type Filter struct {
	Class      string
	Subject    string
	Topic      string
	Difficulty string
}

// Select returns the questions matching the filter, in bank order.
func (b *Bank) Select(f Filter) []Question {
	var out []Question
	for _, q := range b.Questions {
		if matches(f.Class, q.Class) &&
			matches(f.Subject, q.Subject) &&
			matches(f.Topic, q.Topic) &&
			matches(f.Difficulty, q.Difficulty) {
			out = append(out, q)
		}
	}
	return out
}

// Subjects returns the distinct subjects in the bank, in first-seen order.
func (b *Bank) Subjects() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range b.Questions {
		key := strings.ToLower(q.Subject)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q.Subject)
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}
