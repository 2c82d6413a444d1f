package quizrun

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/padhai/internal/quiz"
	"github.com/abhisek/padhai/internal/screen"
	"github.com/abhisek/padhai/internal/ui/components"
	"github.com/abhisek/padhai/internal/ui/layout"
	"github.com/abhisek/padhai/internal/ui/theme"
)

// QuizScreen runs one quiz session question by question, then shows the
// score and a per-question review.
type QuizScreen struct {
	session *quiz.Session

	current  int
	choice   components.MultiChoice
	answered int
	finished bool
	result   quiz.Result
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressReporter = (*QuizScreen)(nil)

func New(session *quiz.Session) *QuizScreen {
	s := &QuizScreen{session: session}
	s.choice = choiceFor(session.Questions[0])
	return s
}

func choiceFor(q quiz.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Text, q.Options[:], int(q.Correct[0]-'A'))
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.finished {
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}
	if s.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Progress reports answered questions for the header.
func (s *QuizScreen) Progress() (int, int) {
	return s.answered, len(s.session.Questions)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	if s.choice.Submitted {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.advance()
		}
		return s, nil
	}

	before := s.choice.Submitted
	s.choice, _ = s.choice.Update(msg)
	if !before && s.choice.Submitted {
		s.answered++
		// MultiChoice guarantees ChosenIndex is in range, so Answer
		// cannot fail here.
		_ = s.session.Answer(s.current, string(rune('A'+s.choice.ChosenIndex)))
	}
	return s, nil
}

func (s *QuizScreen) advance() {
	if s.current+1 >= len(s.session.Questions) {
		s.finished = true
		s.result = s.session.Grade()
		return
	}
	s.current++
	s.choice = choiceFor(s.session.Questions[s.current])
}

func (s *QuizScreen) View(width, height int) string {
	if s.finished {
		return s.renderResult(width)
	}

	q := s.session.Questions[s.current]

	var b strings.Builder
	b.WriteString("\n")

	counter := fmt.Sprintf("Question %d of %d", s.current+1, len(s.session.Questions))
	if q.Topic != "" {
		counter += fmt.Sprintf("  ·  %s / %s", q.Subject, q.Topic)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().MaxWidth(min(width-4, 80)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if s.choice.Submitted {
		b.WriteString("\n")
		verdict := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		if !s.choice.IsCorrect() {
			verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("Not quite. The answer is %s.", q.Correct))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		if q.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					MaxWidth(min(width-4, 80)).Render(q.Explanation)))
		}
	}

	return b.String()
}

func (s *QuizScreen) renderResult(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Quiz complete")))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct  (%.0f%%)",
		s.result.Correct, s.result.Total, s.result.Percent())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(score)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", s.result.Percent()/100, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	for i, qr := range s.result.Questions {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✔")
		if !qr.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✘")
		}
		line := fmt.Sprintf("%s  %2d. %s", mark, i+1, truncate(qr.Question.Text, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
