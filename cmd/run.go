package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/padhai/internal/app"
	"github.com/abhisek/padhai/internal/llm"
	"github.com/abhisek/padhai/internal/screens/planview"
	"github.com/abhisek/padhai/internal/store"
	"github.com/spf13/cobra"
)

// runPlanTUI opens the store and launches the plan view. An empty planID
// shows the active plan.
func runPlanTUI(cmd *cobra.Command, planID string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(planview.New(st.PlanRepo(), st.ProgressRepo(), planID))
}

// buildProvider constructs an LLM provider from the environment. It tries
// the explicit PADHAI_* configuration first, then falls back to probing
// standard API key env vars. Returns nil when no provider is configured;
// callers are expected to degrade to offline behavior.
func buildProvider(ctx context.Context, st *store.Store) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.RequestLogRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		return nil
	}
	return provider
}
