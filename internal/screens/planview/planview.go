package planview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/padhai/internal/planner"
	"github.com/abhisek/padhai/internal/screen"
	"github.com/abhisek/padhai/internal/store"
	"github.com/abhisek/padhai/internal/ui/components"
	"github.com/abhisek/padhai/internal/ui/layout"
	"github.com/abhisek/padhai/internal/ui/theme"
)

type planLoadedMsg struct {
	Plan      *planner.StudyPlan
	Completed planner.CompletionSet
	Err       error
}

type toggleDoneMsg struct {
	Key string
	Err error
}

// sessionRef locates one session within the week groups.
type sessionRef struct {
	day     planner.DaySchedule
	session planner.ScheduledSession
}

// PlanScreen shows the active study plan week by week, with completion
// toggling.
type PlanScreen struct {
	plans    store.PlanRepo
	progress store.ProgressRepo
	planID   string // empty means the active plan

	plan      *planner.StudyPlan
	weeks     [][]planner.DaySchedule
	completed planner.CompletionSet

	week     int
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)
var _ screen.ProgressReporter = (*PlanScreen)(nil)

// New creates a plan screen for the active plan, or for a specific plan
// when planID is non-empty.
func New(plans store.PlanRepo, progress store.ProgressRepo, planID string) *PlanScreen {
	return &PlanScreen{plans: plans, progress: progress, planID: planID}
}

func (s *PlanScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var plan *planner.StudyPlan
		var err error
		if s.planID != "" {
			plan, err = s.plans.Get(ctx, s.planID)
		} else {
			plan, err = s.plans.Active(ctx)
		}
		if err != nil {
			return planLoadedMsg{Err: err}
		}
		if plan == nil {
			return planLoadedMsg{Err: fmt.Errorf("no study plan yet; run: padhai plan generate")}
		}

		completed, err := s.progress.CompletedKeys(ctx, plan.ID)
		if err != nil {
			return planLoadedMsg{Err: err}
		}

		return planLoadedMsg{Plan: plan, Completed: completed}
	}
}

func (s *PlanScreen) Title() string {
	if s.plan != nil {
		return s.plan.Name
	}
	return "Study Plan"
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Week"},
		{Key: "↑↓", Description: "Session"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Progress reports plan-wide completion for the header.
func (s *PlanScreen) Progress() (int, int) {
	if s.plan == nil {
		return 0, 0
	}
	sum := planner.SummarizePlan(s.plan, s.completed)
	return sum.Completed, sum.Total
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.plan = msg.Plan
			s.weeks = planner.WeekGroups(msg.Plan)
			s.completed = msg.Completed
		}
		s.loaded = true
		return s, nil

	case toggleDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if s.plan == nil {
			return s, nil
		}
		switch msg.String() {
		case "left", "h":
			if s.week > 0 {
				s.week--
				s.selected = 0
			}
		case "right", "l":
			if s.week < len(s.weeks)-1 {
				s.week++
				s.selected = 0
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.weekSessions())-1 {
				s.selected++
			}
		case " ", "enter":
			return s, s.toggleSelected()
		}
	}
	return s, nil
}

// weekSessions flattens the selected week into a navigable row list.
func (s *PlanScreen) weekSessions() []sessionRef {
	if s.week >= len(s.weeks) {
		return nil
	}
	var refs []sessionRef
	for _, day := range s.weeks[s.week] {
		for _, sess := range day.Sessions {
			refs = append(refs, sessionRef{day: day, session: sess})
		}
	}
	return refs
}

// toggleSelected flips completion of the selected session, optimistically
// updating the local set and persisting in the background.
func (s *PlanScreen) toggleSelected() tea.Cmd {
	refs := s.weekSessions()
	if s.selected >= len(refs) {
		return nil
	}
	key := refs[s.selected].session.TaskKey()
	planID := s.plan.ID

	marking := !s.completed.Has(key)
	if marking {
		s.completed.Add(key)
	} else {
		s.completed.Remove(key)
	}

	progress := s.progress
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if marking {
			err = progress.Mark(ctx, planID, key)
		} else {
			err = progress.Unmark(ctx, planID, key)
		}
		return toggleDoneMsg{Key: key, Err: err}
	}
}

func (s *PlanScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n%s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading plan...")
	}
	if len(s.weeks) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The plan has no scheduled sessions.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderWeekTabs()))
	b.WriteString("\n\n")

	days := s.weeks[s.week]
	weekSum := planner.SummarizeWeek(days, s.completed)
	bar := components.NewProgressBar("Week", float64(weekSum.Percent)/100, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	row := 0
	for _, day := range days {
		daySum := planner.SummarizeDay(day, s.completed)
		dayLine := fmt.Sprintf("%s, %s  (%d/%d)",
			day.Weekday, day.Date.Format("Jan 02"), daySum.Completed, daySum.Total)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(dayLine)))
		b.WriteString("\n")

		for _, sess := range day.Sessions {
			mark := "[ ]"
			if s.completed.Has(sess.TaskKey()) {
				mark = "[✔]"
			}

			prefix := "  "
			if row == s.selected {
				prefix = "> "
			}

			kind := ""
			if sess.Kind == planner.KindReview {
				kind = "  (review)"
			}

			line := fmt.Sprintf("%s%s %s  %dm  %s: %s%s",
				prefix, mark, sess.StartTime, sess.DurationMinutes,
				sess.Subject, sess.Topic, kind)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if s.completed.Has(sess.TaskKey()) {
				style = lipgloss.NewStyle().Foreground(theme.TextDim)
			}
			if row == s.selected {
				style = style.Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *PlanScreen) renderWeekTabs() string {
	var parts []string
	for i, days := range s.weeks {
		label := fmt.Sprintf(" Week %d (%s) ", i+1, days[0].Date.Format("Jan 02"))
		if i == s.week {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).Background(theme.Primary).Bold(true).Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return strings.Join(parts, " ")
}
