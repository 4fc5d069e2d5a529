package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"mockinterview/internal/model"
)

// Score ceiling for evaluations. A "perfect" 100 is never shown.
const maxScore = 95

// extractJSONObject returns the first top-level balanced {...} substring
// of raw, skipping braces inside JSON strings. ok is false when no
// complete object is present.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	return "", false
}

// clampScore forces a score into [0, 95].
func clampScore(score int) int {
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}

// stripCodeFences removes markdown fence markers from raw model text.
func stripCodeFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// NormalizeQuestion coerces raw LLM output into a GeneratedQuestion.
// Unparseable output degrades to the raw text itself as the question.
func NormalizeQuestion(raw string) model.GeneratedQuestion {
	var q model.GeneratedQuestion
	if obj, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal([]byte(obj), &q); err == nil {
			return q
		}
	}

	return model.GeneratedQuestion{
		Question:  stripCodeFences(raw),
		FocusArea: "General",
	}
}

// NormalizeFeedback coerces raw LLM output into Feedback, clamping the
// score into [0, 95]. Unparseable output gets the fixed fallback
// evaluation. Never fails.
func NormalizeFeedback(raw string) model.Feedback {
	var fb model.Feedback
	if obj, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal([]byte(obj), &fb); err == nil {
			fb.Score = clampScore(fb.Score)
			return fb
		}
	}

	return model.Feedback{
		Score:     60,
		Strengths: []string{"Attempted to answer the question"},
		Improvements: []string{
			"Provide more specific examples",
			"Structure your response better",
			"Address all parts of the question",
		},
		NextTip: "Take time to think through your answer before responding",
	}
}

// NormalizeReport coerces raw LLM output into ReportContent. The
// fallback embeds the computed average score so the user still gets a
// meaningful report when the model output is unusable.
func NormalizeReport(raw string, averageScore float64) model.ReportContent {
	var rc model.ReportContent
	if obj, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal([]byte(obj), &rc); err == nil {
			return rc
		}
	}

	return model.ReportContent{
		Summary: fmt.Sprintf("Interview completed with an average score of %.1f/100. Review feedback for specific areas to improve.", averageScore),
		TopStrengths: []string{
			"Completed the full interview",
		},
		ImprovementAreas: []string{
			"Provide more detailed examples",
			"Improve response structure",
			"Demonstrate deeper technical knowledge",
		},
		Roadmap: []string{
			"Week 1: Review common interview questions in your domain",
			"Week 2: Practice formulating structured responses with examples",
			"Week 3: Study technical concepts specific to your role",
			"Week 4: Do mock interviews and measure improvement",
			"Ongoing: Record and review your answers for clarity and depth",
		},
	}
}
