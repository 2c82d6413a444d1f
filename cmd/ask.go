package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/padhai/internal/app"
	"github.com/abhisek/padhai/internal/screens/chat"
	"github.com/abhisek/padhai/internal/tutor"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the study tutor a question",
	Long: `Ask the tutor about study techniques, planning or motivation.
With a question argument the answer is printed directly; without one an
interactive chat opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider := buildProvider(ctx, st)
		svc := tutor.NewService(provider, tutor.DefaultConfig())

		if len(args) == 0 {
			return app.Run(chat.New(svc))
		}

		question := strings.Join(args, " ")
		answer, fromLLM, err := svc.Ask(ctx, question)
		if err != nil {
			return err
		}
		if !fromLLM {
			fmt.Println("(offline answer)")
		}
		fmt.Println(answer)
		return nil
	},
}
