package doubt

import (
	"fmt"
	"strings"
)

const solverSystemPrompt = `You are a subject tutor solving a student's doubt. Work the problem step by step, explaining each step so the student could solve a similar problem alone next time.`

func buildSolverUserMessage(in Input, extractedText string) string {
	var b strings.Builder

	if in.Question != "" {
		b.WriteString(fmt.Sprintf("Question: %s\n", in.Question))
	}
	if extractedText != "" {
		b.WriteString(fmt.Sprintf("Text extracted from the student's photo:\n%s\n", extractedText))
	}
	if in.Subject != "" {
		b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	}

	language := in.Language
	if language == "" {
		language = "english"
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
1. Solve the question in numbered steps. Each step gets a short title, an explanation, and the working or formula used.
2. State the final answer plainly at the end.
3. Rate the difficulty as easy, medium, or hard for a school student.
4. List 2-4 related concepts the student should revise.
5. Answer in %s. Use plain ASCII for all math. No LaTeX, no Unicode symbols.`, language))

	return b.String()
}

const extractSystemPrompt = `You extract text from photos of textbook pages, worksheets, and handwritten questions.`

const extractUserPrompt = `Extract all question text from this image. Preserve the original wording, numbers, and any sub-parts. Return only the extracted text, nothing else. If no question is visible, return an empty response.`
