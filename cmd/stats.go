package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/padhai/internal/planner"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and usage statistics",
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
			fmt.Println("No active plan.")
		} else {
			done, err := st.ProgressRepo().CompletedKeys(ctx, plan.ID)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			sum := planner.SummarizePlan(plan, done)
			fmt.Printf("Active plan: %s\n", plan.Name)
			fmt.Printf("Progress:    %d/%d sessions (%d%%)\n", sum.Completed, sum.Total, sum.Percent)
			fmt.Println()

			fmt.Println("By week")
			fmt.Println(strings.Repeat("─", 40))
			for i, week := range planner.WeekGroups(plan) {
				ws := planner.SummarizeWeek(week, done)
				fmt.Printf("  Week %d  %3d/%-3d  %3d%%\n", i+1, ws.Completed, ws.Total, ws.Percent)
			}
			fmt.Println()
		}

		doubts, err := st.DoubtRepo().Recent(ctx, 1)
		if err == nil && len(doubts) > 0 {
			fmt.Printf("Last doubt solved: %s\n", doubts[0].Timestamp.Local().Format("2006-01-02 15:04"))
		}

		totals, err := st.RequestLogRepo().Totals(ctx)
		if err != nil {
			return fmt.Errorf("load usage: %w", err)
		}
		fmt.Printf("LLM usage: %d requests, %d tokens in, %d tokens out\n",
			totals.Requests, totals.InputTokens, totals.OutputTokens)
		fmt.Println("Run `padhai llm stats` for a cost breakdown.")
		return nil
	},
}
