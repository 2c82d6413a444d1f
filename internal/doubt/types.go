// Package doubt solves student questions step by step, optionally
// extracting the question text from a photo first.
package doubt

// Input is a doubt to solve. Either Question or ImagePath must be set;
// when both are set the typed question takes precedence and the image
// text is used as supporting context.
type Input struct {
	Question  string
	ImagePath string
	Subject   string
	Language  string

	// ExtractedText is pre-extracted (and possibly user-corrected) image
	// text. When set, OCR is skipped even if ImagePath is present.
	ExtractedText string
}

// SolutionStep is one step of a worked solution.
type SolutionStep struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Formula     string `json:"formula,omitempty"`
}

// Solution is a structured step-by-step answer to a doubt.
type Solution struct {
	Steps           []SolutionStep `json:"steps"`
	FinalAnswer     string         `json:"finalAnswer"`
	Difficulty      string         `json:"difficulty"`
	RelatedConcepts []string       `json:"relatedConcepts"`
}
