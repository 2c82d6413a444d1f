package tutor

import "strings"

// fallbackTopics maps question keywords to canned guidance, used when no
// LLM provider is configured.
var fallbackTopics = []struct {
	keywords []string
	answer   string
}{
	{
		keywords: []string{"plan", "schedule", "timetable"},
		answer: "A good study plan balances all your subjects instead of cramming one. " +
			"Generate a plan with your real free hours, keep sessions to 45-60 minutes, " +
			"and revisit each topic a few times over the following week.",
	},
	{
		keywords: []string{"exam", "test", "revision", "revise"},
		answer: "In the last days before an exam, switch from learning new material to " +
			"active recall: close the book and write down what you remember, then check. " +
			"Past papers under timed conditions are the single best predictor practice.",
	},
	{
		keywords: []string{"focus", "concentrate", "distract", "procrastinat"},
		answer: "Work in short, fixed blocks with a visible timer and your phone in " +
			"another room. Start with the smallest possible first step; momentum does " +
			"the rest. Take the scheduled breaks, they are part of the method.",
	},
	{
		keywords: []string{"memor", "remember", "forget"},
		answer: "Spaced repetition beats rereading: review a topic the day after you " +
			"learn it, then after three days, then a week. Test yourself instead of " +
			"rereading notes.",
	},
}

const fallbackDefault = "I can help with study planning, revision techniques, focus, and " +
	"memorization. Configure an API key (GEMINI_API_KEY, OPENAI_API_KEY or " +
	"ANTHROPIC_API_KEY) for full answers to subject questions."

// FallbackAnswer returns canned guidance matched on question keywords.
func FallbackAnswer(question string) string {
	q := strings.ToLower(question)
	for _, t := range fallbackTopics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return t.answer
			}
		}
	}
	return fallbackDefault
}
