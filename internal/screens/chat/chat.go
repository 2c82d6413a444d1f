package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/padhai/internal/screen"
	"github.com/abhisek/padhai/internal/tutor"
	"github.com/abhisek/padhai/internal/ui/components"
	"github.com/abhisek/padhai/internal/ui/layout"
	"github.com/abhisek/padhai/internal/ui/theme"
)

type answerMsg struct {
	Answer  string
	FromLLM bool
	Err     error
}

// exchange is one question and its answer in the transcript.
type exchange struct {
	question string
	answer   string
	fromLLM  bool
}

// ChatScreen is a question-and-answer view over the tutor service. The
// transcript grows downward; the input stays at the bottom.
type ChatScreen struct {
	svc     *tutor.Service
	input   components.TextInput
	history []exchange
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

func New(svc *tutor.Service) *ChatScreen {
	return &ChatScreen{
		svc:   svc,
		input: components.NewTextInput("Ask anything about your studies...", false, 200),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Ask the Tutor"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.history[len(s.history)-1].answer = msg.Answer
		s.history[len(s.history)-1].fromLLM = msg.FromLLM
		return s, nil

	case tea.KeyMsg:
		if s.waiting {
			return s, nil
		}
		if msg.String() == "enter" {
			question := strings.TrimSpace(s.input.Value())
			if question == "" {
				return s, nil
			}
			s.errMsg = ""
			s.waiting = true
			s.history = append(s.history, exchange{question: question})
			s.input = components.NewTextInput("Ask anything about your studies...", false, 200)

			svc := s.svc
			return s, tea.Batch(s.input.Init(), func() tea.Msg {
				answer, fromLLM, err := svc.Ask(context.Background(), question)
				return answerMsg{Answer: answer, FromLLM: fromLLM, Err: err}
			})
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) View(width, height int) string {
	wrap := min(width-6, 90)

	questionStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).MaxWidth(wrap)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text).MaxWidth(wrap)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	var b strings.Builder
	b.WriteString("\n")

	if len(s.history) == 0 {
		b.WriteString("  " + dimStyle.Render("Ask a study question. The tutor remembers the conversation."))
		b.WriteString("\n")
	}

	for i, ex := range s.history {
		b.WriteString("  " + questionStyle.Render("You: "+ex.question))
		b.WriteString("\n")
		switch {
		case ex.answer != "":
			label := "Tutor: "
			if !ex.fromLLM {
				label = "Tutor (offline): "
			}
			b.WriteString("  " + answerStyle.Render(label+ex.answer))
		case i == len(s.history)-1 && s.waiting:
			b.WriteString("  " + dimStyle.Render("Thinking..."))
		}
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString("\n  " + s.input.View())
	b.WriteString("\n")

	return b.String()
}
