package doubt

import "fmt"

// fallbackSolution returns generic problem-solving guidance when no LLM
// provider is configured.
func fallbackSolution(in Input) *Solution {
	question := in.Question
	if question == "" {
		question = "the question in your photo"
	}

	return &Solution{
		Steps: []SolutionStep{
			{
				Title:       "Understand the question",
				Explanation: fmt.Sprintf("Read %s twice and write down what is given and what is asked.", question),
			},
			{
				Title:       "Recall the relevant concept",
				Explanation: "Find the chapter section or formula that connects the given values to the asked quantity.",
			},
			{
				Title:       "Work it through",
				Explanation: "Substitute the given values and solve one operation at a time, keeping units throughout.",
			},
			{
				Title:       "Check the answer",
				Explanation: "Plug the result back into the original statement and confirm it makes sense in size and units.",
			},
		},
		FinalAnswer: "Configure an API key (GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY) for a full worked solution.",
		Difficulty:  "medium",
		RelatedConcepts: []string{
			"problem decomposition",
			"formula selection",
		},
	}
}
