package gateway

import "github.com/abhisek/brainrot/internal/llm"

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// DefinitionSchema is the response contract for define-topic.
var DefinitionSchema = &llm.Schema{
	Name:        "topic-definition",
	Description: "Definition of a brain-rot content category with examples",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"definition": map[string]any{
				"type":        "string",
				"description": "What the content is and why it harms critical thinking",
			},
			"examples": stringArray,
		},
		"required":             []any{"definition", "examples"},
		"additionalProperties": false,
	},
}

// QuizSchema is the response contract for generate-quiz. The root is an
// array; providers that need an object root wrap it themselves.
var QuizSchema = &llm.Schema{
	Name:        "recognition-quiz",
	Description: "Multiple-choice questions on recognizing brain-rot content",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "A scenario or content headline",
				},
				"options": stringArray,
				"correctAnswerIndex": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the correct option",
				},
			},
			"required":             []any{"question", "options", "correctAnswerIndex"},
			"additionalProperties": false,
		},
	},
}

// AnalysisSchema is the response contract for analyze-logs.
var AnalysisSchema = &llm.Schema{
	Name:        "consumption-analysis",
	Description: "Brain-rot potential score and advice for a consumption log",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore": map[string]any{
				"type":        "number",
				"description": "Overall brain-rot potential for the day, 0 to 100",
			},
			"analysis":    map[string]any{"type": "string"},
			"suggestions": stringArray,
		},
		"required":             []any{"overallScore", "analysis", "suggestions"},
		"additionalProperties": false,
	},
}
