package content

// DefinitionResult is the generated explanation of one glossary topic.
type DefinitionResult struct {
	// Definition is the explanatory text, including why the content harms
	// critical thinking.
	Definition string `json:"definition"`

	// Examples are concrete illustrations of the topic, in display order.
	Examples []string `json:"examples"`
}

// QuizQuestion is one multiple-choice recognition question.
type QuizQuestion struct {
	// Question is the scenario or headline presented to the user.
	Question string `json:"question"`

	// Options holds the answer choices. At least two.
	Options []string `json:"options"`

	// CorrectAnswerIndex indexes into Options.
	CorrectAnswerIndex int `json:"correctAnswerIndex"`
}

// IsCorrect reports whether choice is the correct option.
func (q QuizQuestion) IsCorrect(choice int) bool {
	return choice == q.CorrectAnswerIndex
}

// ContentLog is a single tracker entry: time spent on one content type.
type ContentLog struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Duration int    `json:"duration"` // minutes, always > 0
	Date     string `json:"date"`     // YYYY-MM-DD
}

// AnalysisResult is the AI assessment of a consumption log.
type AnalysisResult struct {
	// OverallScore is the day's brain-rot potential, 0-100.
	OverallScore float64 `json:"overallScore"`

	// Analysis is a short narrative about the user's habits.
	Analysis string `json:"analysis"`

	// Suggestions are actionable tips for a healthier information diet.
	Suggestions []string `json:"suggestions"`
}

// QuizSize is the number of questions requested per quiz batch.
const QuizSize = 5

// DateLayout formats ContentLog.Date.
const DateLayout = "2006-01-02"
