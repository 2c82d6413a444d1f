package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/padhai/internal/planner"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-key]",
	Short: "Mark a session in the active plan as done",
	Long: `Mark a study session as done, either by its task key
(2025-09-01-Math-Algebra) or by --date, --subject and --topic.

Use --undo to remove a mark.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		plan, err := st.PlanRepo().Active(ctx)
		if err != nil {
			return fmt.Errorf("load active plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("no active plan; run: padhai plan generate")
		}

		key, err := taskKeyFromArgs(cmd, args)
		if err != nil {
			return err
		}

		if !planHasTask(plan, key) {
			return fmt.Errorf("task %q is not in the active plan", key)
		}

		undo, _ := cmd.Flags().GetBool("undo")
		if undo {
			if err := st.ProgressRepo().Unmark(ctx, plan.ID, key); err != nil {
				return fmt.Errorf("unmark: %w", err)
			}
			fmt.Printf("Unmarked %s\n", key)
		} else {
			if err := st.ProgressRepo().Mark(ctx, plan.ID, key); err != nil {
				return fmt.Errorf("mark: %w", err)
			}
			fmt.Printf("Done: %s\n", key)
		}

		done, err := st.ProgressRepo().CompletedKeys(ctx, plan.ID)
		if err != nil {
			return nil
		}
		sum := planner.SummarizePlan(plan, done)
		fmt.Printf("Plan progress: %d/%d (%d%%)\n", sum.Completed, sum.Total, sum.Percent)
		return nil
	},
}

func taskKeyFromArgs(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	date, _ := cmd.Flags().GetString("date")
	subject, _ := cmd.Flags().GetString("subject")
	topic, _ := cmd.Flags().GetString("topic")
	if subject == "" || topic == "" {
		return "", fmt.Errorf("give a task key, or --subject and --topic")
	}

	day := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return "", fmt.Errorf("parse --date: %w", err)
		}
		day = parsed
	}
	return planner.TaskKey(day, subject, topic), nil
}

func planHasTask(plan *planner.StudyPlan, key string) bool {
	for _, day := range plan.Schedule {
		for _, s := range day.Sessions {
			if s.TaskKey() == key {
				return true
			}
		}
	}
	return false
}

func init() {
	doneCmd.Flags().String("date", "", "Session date (YYYY-MM-DD, default today)")
	doneCmd.Flags().String("subject", "", "Session subject")
	doneCmd.Flags().String("topic", "", "Session topic")
	doneCmd.Flags().Bool("undo", false, "Remove the completion mark instead")
}
