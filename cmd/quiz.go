package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/padhai/internal/app"
	"github.com/abhisek/padhai/internal/quiz"
	"github.com/abhisek/padhai/internal/screens/quizrun"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a quiz from a question bank",
	Long: `Run an interactive quiz drawn from a CSV question bank.
The bank format is: id,class,subject,topic,difficulty,question_text,
option_a,option_b,option_c,option_d,correct_answer,explanation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, _ := cmd.Flags().GetString("bank")
		if bankPath == "" {
			return fmt.Errorf("--bank is required")
		}

		bank, err := quiz.LoadBank(bankPath)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		filter := quiz.Filter{}
		filter.Class, _ = cmd.Flags().GetString("class")
		filter.Subject, _ = cmd.Flags().GetString("subject")
		filter.Topic, _ = cmd.Flags().GetString("topic")
		filter.Difficulty, _ = cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		seed := uint64(time.Now().UnixNano())
		rng := rand.New(rand.NewPCG(seed, seed))

		session, err := quiz.NewSession(bank, filter, count, rng)
		if err != nil {
			return err
		}

		return app.Run(quizrun.New(session))
	},
}

func init() {
	quizCmd.Flags().String("bank", "", "Path to the CSV question bank")
	quizCmd.Flags().String("class", "", "Filter by class")
	quizCmd.Flags().String("subject", "", "Filter by subject")
	quizCmd.Flags().String("topic", "", "Filter by topic")
	quizCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")
	quizCmd.Flags().IntP("count", "n", 10, "Number of questions")
}
