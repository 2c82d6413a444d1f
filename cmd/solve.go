package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/padhai/internal/doubt"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [question]",
	Short: "Solve a doubt step by step",
	Long: `Solve a study doubt. Give the question as an argument, or point
--image at a photo of the problem to have the text extracted first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		imagePath, _ := cmd.Flags().GetString("image")
		subject, _ := cmd.Flags().GetString("subject")
		language, _ := cmd.Flags().GetString("language")

		question := strings.Join(args, " ")
		if question == "" && imagePath == "" {
			return fmt.Errorf("give a question or --image")
		}

		provider := buildProvider(ctx, st)

		var extractor doubt.TextExtractor
		if imagePath != "" {
			key := os.Getenv("PADHAI_GEMINI_API_KEY")
			if key == "" {
				key = os.Getenv("GEMINI_API_KEY")
			}
			if key == "" {
				return fmt.Errorf("image extraction needs GEMINI_API_KEY or PADHAI_GEMINI_API_KEY")
			}
			extractor, err = doubt.NewGeminiExtractor(ctx, key, "")
			if err != nil {
				return fmt.Errorf("init extractor: %w", err)
			}
		}

		// Extract up front so the student can correct OCR mistakes before
		// the question is solved.
		extracted := ""
		if extractor != nil {
			noEdit, _ := cmd.Flags().GetBool("no-edit")
			extracted, err = extractor.Extract(ctx, imagePath)
			if err != nil {
				return fmt.Errorf("extract question from image: %w", err)
			}
			if !noEdit {
				fmt.Printf("Extracted text:\n%s\n\n", indent(extracted, "  "))
				fmt.Print("Press Enter to solve, or type a corrected question: ")
				reader := bufio.NewReader(os.Stdin)
				line, _ := reader.ReadString('\n')
				if line = strings.TrimSpace(line); line != "" {
					extracted = line
				}
			}
		}

		svc := doubt.NewService(provider, extractor, st.DoubtRepo(), doubt.DefaultConfig())
		solution, fromLLM, err := svc.Solve(ctx, doubt.Input{
			Question:      question,
			ImagePath:     imagePath,
			ExtractedText: extracted,
			Subject:       subject,
			Language:      language,
		})
		if err != nil {
			return err
		}

		if !fromLLM {
			fmt.Println("(offline answer; configure an API key for full solutions)")
			fmt.Println()
		}
		printSolution(solution)
		return nil
	},
}

func printSolution(s *doubt.Solution) {
	for i, step := range s.Steps {
		fmt.Printf("Step %d: %s\n", i+1, step.Title)
		fmt.Println(indent(step.Explanation, "  "))
		if step.Formula != "" {
			fmt.Printf("  %s\n", step.Formula)
		}
		fmt.Println()
	}
	fmt.Printf("Answer: %s\n", s.FinalAnswer)
	if s.Difficulty != "" {
		fmt.Printf("Difficulty: %s\n", s.Difficulty)
	}
	if len(s.RelatedConcepts) > 0 {
		fmt.Printf("Related: %s\n", strings.Join(s.RelatedConcepts, ", "))
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func init() {
	solveCmd.Flags().String("image", "", "Path to a photo of the problem")
	solveCmd.Flags().String("subject", "", "Subject hint (e.g. Math, Physics)")
	solveCmd.Flags().String("language", "", "Answer language (default english)")
	solveCmd.Flags().Bool("no-edit", false, "Skip the extracted-text correction prompt")
}
