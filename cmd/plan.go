package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/padhai/internal/planner"
	"github.com/abhisek/padhai/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect study plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new study plan and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		var req planner.GenerationRequest
		fromSaved, _ := cmd.Flags().GetBool("from-saved")
		if fromSaved {
			saved, err := st.ParamsRepo().Load(ctx)
			if err != nil {
				return fmt.Errorf("load saved parameters: %w", err)
			}
			if saved == nil {
				return fmt.Errorf("no saved parameters; generate a plan with flags first")
			}
			req = *saved
		} else {
			req, err = requestFromFlags(cmd)
			if err != nil {
				return err
			}
		}

		plan, overflow, err := planner.Generate(req, time.Now())
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name != "" {
			plan.Name = name
		} else if plan.Name == "" {
			plan.Name = "Study Plan " + time.Now().Format("Jan 02")
		}

		if err := st.PlanRepo().Save(ctx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		if err := st.ParamsRepo().Save(ctx, &req); err != nil {
			return fmt.Errorf("save parameters: %w", err)
		}

		days := len(plan.Schedule)
		sessions := 0
		for _, d := range plan.Schedule {
			sessions += len(d.Sessions)
		}
		fmt.Printf("Generated %q: %d sessions across %d days, %.1f study hours.\n",
			plan.Name, sessions, days, plan.TotalHours)
		if overflow.Total() > 0 {
			fmt.Printf("Warning: %d new and %d review sessions did not fit the available slots.\n",
				overflow.NewUnits, overflow.ReviewUnits)
			fmt.Println("Add more slots, extend the horizon, or reduce topics.")
		}
		fmt.Printf("Plan ID: %s\n", plan.ID)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		plans, err := st.PlanRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No plans yet. Run: padhai plan generate")
			return nil
		}

		fmt.Printf("%-36s  %-24s  %-16s  %7s  %s\n", "ID", "Name", "Created", "Hours", "Active")
		fmt.Println(strings.Repeat("─", 96))
		for _, p := range plans {
			active := ""
			if p.Active {
				active = "✓"
			}
			fmt.Printf("%-36s  %-24s  %-16s  %7.1f  %s\n",
				p.ID, clip(p.Name, 24), p.CreatedAt.Local().Format("2006-01-02 15:04"), p.TotalHours, active)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [plan-id]",
	Short: "Print a plan's schedule (active plan by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		plan, err := loadPlan(ctx, st.PlanRepo(), args)
		if err != nil {
			return err
		}

		done, err := st.ProgressRepo().CompletedKeys(ctx, plan.ID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		sum := planner.SummarizePlan(plan, done)
		fmt.Printf("%s  (%d/%d done, %d%%)\n\n", plan.Name, sum.Completed, sum.Total, sum.Percent)

		for i, week := range planner.WeekGroups(plan) {
			ws := planner.SummarizeWeek(week, done)
			fmt.Printf("Week %d  (%d/%d done)\n", i+1, ws.Completed, ws.Total)
			fmt.Println(strings.Repeat("─", 64))
			for _, day := range week {
				fmt.Printf("  %s, %s\n", day.Weekday, day.Date.Format("Jan 02"))
				for _, s := range day.Sessions {
					mark := " "
					if done.Has(s.TaskKey()) {
						mark = "✓"
					}
					kind := ""
					if s.Kind == planner.KindReview {
						kind = "  (review)"
					}
					fmt.Printf("    [%s] %s  %3dm  %s: %s%s\n",
						mark, s.StartTime, s.DurationMinutes, s.Subject, s.Topic, kind)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var planExportCmd = &cobra.Command{
	Use:   "export [plan-id]",
	Short: "Export a plan as JSON (active plan by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		plan, err := loadPlan(context.Background(), st.PlanRepo(), args)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

var planViewCmd = &cobra.Command{
	Use:   "view [plan-id]",
	Short: "Browse a plan interactively (active plan by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID := ""
		if len(args) > 0 {
			planID = args[0]
		}
		return runPlanTUI(cmd, planID)
	},
}

// loadPlan fetches the plan named by args[0], or the active plan when no
// argument is given.
func loadPlan(ctx context.Context, repo store.PlanRepo, args []string) (*planner.StudyPlan, error) {
	if len(args) > 0 {
		return repo.Get(ctx, args[0])
	}
	plan, err := repo.Active(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no active plan; run: padhai plan generate")
	}
	return plan, nil
}

// requestFromFlags assembles a GenerationRequest from the generate flags.
func requestFromFlags(cmd *cobra.Command) (planner.GenerationRequest, error) {
	var req planner.GenerationRequest

	subjects, _ := cmd.Flags().GetStringArray("subject")
	for _, s := range subjects {
		name, prio, _ := strings.Cut(s, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return req, fmt.Errorf("empty subject in %q", s)
		}
		req.Subjects = append(req.Subjects, planner.Subject{
			Name:     name,
			Priority: planner.ParsePriority(strings.TrimSpace(prio)),
		})
	}

	topics, _ := cmd.Flags().GetStringArray("topic")
	req.Topics = make(map[string][]string)
	for _, t := range topics {
		subject, list, ok := strings.Cut(t, "=")
		if !ok {
			return req, fmt.Errorf("topic flag %q must be Subject=Topic1,Topic2", t)
		}
		subject = strings.TrimSpace(subject)
		for _, topic := range strings.Split(list, ",") {
			topic = strings.TrimSpace(topic)
			if topic != "" {
				req.Topics[subject] = append(req.Topics[subject], topic)
			}
		}
	}

	slots, _ := cmd.Flags().GetStringArray("slot")
	for _, s := range slots {
		w, err := parseSlotFlag(s)
		if err != nil {
			return req, err
		}
		req.AvailableSlots = append(req.AvailableSlots, w)
	}

	sessionLen, _ := cmd.Flags().GetInt("session")
	breakLen, _ := cmd.Flags().GetInt("break")
	req.Session = planner.SessionParameters{
		SessionLengthMinutes: sessionLen,
		BreakMinutes:         breakLen,
		StudyMode:            planner.ModeRegular,
	}

	if start, _ := cmd.Flags().GetString("start"); start != "" {
		d, err := time.ParseInLocation("2006-01-02", start, time.Local)
		if err != nil {
			return req, fmt.Errorf("parse --start: %w", err)
		}
		req.StartDate = d
	}
	if exam, _ := cmd.Flags().GetString("exam"); exam != "" {
		d, err := time.ParseInLocation("2006-01-02", exam, time.Local)
		if err != nil {
			return req, fmt.Errorf("parse --exam: %w", err)
		}
		req.ExamDate = d
		req.Session.StudyMode = planner.ModeExamPrep
	}
	if horizon, _ := cmd.Flags().GetInt("horizon"); horizon > 0 {
		req.HorizonDays = horizon
	}

	return req, nil
}

// parseSlotFlag parses "mon 16:00-17:30" into a TimeWindow.
func parseSlotFlag(s string) (planner.TimeWindow, error) {
	var w planner.TimeWindow

	day, times, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return w, fmt.Errorf("slot %q must be like \"mon 16:00-17:30\"", s)
	}
	weekday, err := parseWeekday(day)
	if err != nil {
		return w, err
	}

	from, to, ok := strings.Cut(times, "-")
	if !ok {
		return w, fmt.Errorf("slot %q must be like \"mon 16:00-17:30\"", s)
	}
	start, err := planner.ParseClock(strings.TrimSpace(from))
	if err != nil {
		return w, err
	}
	end, err := planner.ParseClock(strings.TrimSpace(to))
	if err != nil {
		return w, err
	}
	if end <= start {
		return w, fmt.Errorf("slot %q ends before it starts", s)
	}

	return planner.TimeWindow{Day: weekday, Start: start, End: end}, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sun", "sunday":
		return time.Sunday, nil
	case "mon", "monday":
		return time.Monday, nil
	case "tue", "tuesday":
		return time.Tuesday, nil
	case "wed", "wednesday":
		return time.Wednesday, nil
	case "thu", "thursday":
		return time.Thursday, nil
	case "fri", "friday":
		return time.Friday, nil
	case "sat", "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	planGenerateCmd.Flags().StringArray("subject", nil, `Subject with optional priority, e.g. "Math:high" (repeatable)`)
	planGenerateCmd.Flags().StringArray("topic", nil, `Topics per subject, e.g. "Math=Algebra,Trigonometry" (repeatable)`)
	planGenerateCmd.Flags().StringArray("slot", nil, `Weekly availability, e.g. "mon 16:00-17:30" (repeatable)`)
	planGenerateCmd.Flags().Int("session", 45, "Session length in minutes")
	planGenerateCmd.Flags().Int("break", 10, "Break between sessions in minutes")
	planGenerateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, default today)")
	planGenerateCmd.Flags().String("exam", "", "Exam date (YYYY-MM-DD); switches to exam-prep mode")
	planGenerateCmd.Flags().Int("horizon", 0, "Planning horizon in days (ignored when --exam is set)")
	planGenerateCmd.Flags().String("name", "", "Plan name")
	planGenerateCmd.Flags().Bool("from-saved", false, "Reuse the last saved generation parameters")

	planExportCmd.Flags().String("out", "", "Write JSON to a file instead of stdout")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planExportCmd)
	planCmd.AddCommand(planViewCmd)
}
