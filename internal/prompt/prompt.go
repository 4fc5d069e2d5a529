// Package prompt builds the three prompt shapes sent to the LLM. All
// builders are pure functions of session state.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"mockinterview/internal/model"
)

// DefaultExperienceLevel is assumed when the caller omits one.
const DefaultExperienceLevel = "mid"

// PerformanceLevel maps an average score to the label used in the
// summary prompt.
func PerformanceLevel(averageScore float64) string {
	switch {
	case averageScore >= 85:
		return "Excellent"
	case averageScore >= 75:
		return "Good"
	case averageScore >= 65:
		return "Average"
	case averageScore >= 50:
		return "Below Average"
	default:
		return "Poor"
	}
}

// Question builds the prompt for generating interview question
// roundNumber of 9. previousQuestions is advisory: it is embedded in
// the prompt but nothing checks the model actually avoided them.
func Question(profession, experienceLevel string, roundNumber int, previousQuestions []string) string {
	if experienceLevel == "" {
		experienceLevel = DefaultExperienceLevel
	}

	avoid := ""
	if len(previousQuestions) > 0 {
		avoid = fmt.Sprintf("Avoid these questions: %s.\n", strings.Join(previousQuestions, ", "))
	}

	return fmt.Sprintf(`Generate a new interview question for a %s-level %s candidate.
This is question %d of %d.
%sReturn ONLY valid JSON in this exact format (no markdown, no code blocks):
{"question": "Your question here", "focus_area": "Technical Skills/Problem Solving/Communication/etc"}`,
		experienceLevel, profession, roundNumber, model.DefaultTotalQuestions, avoid)
}

// Evaluation builds the strict-scoring prompt for one answer.
func Evaluation(question, answer, profession, experienceLevel string) string {
	if experienceLevel == "" {
		experienceLevel = DefaultExperienceLevel
	}

	levelNote := ""
	switch experienceLevel {
	case "senior":
		levelNote = "- For senior level: expect strategic thinking and deep technical knowledge\n"
	case "junior":
		levelNote = "- For junior level: expect foundational knowledge and willingness to learn\n"
	}

	return fmt.Sprintf(`You are a STRICT interview evaluator. Evaluate this answer with high standards and realistic scoring.

Question: "%s"
Answer: "%s"
Profession: %s
Experience Level: %s

EVALUATION CRITERIA (Be Strict):
- Score 0-100 based on: relevance, depth, clarity, structure, and specificity
- Deduct points for: vague answers, lack of examples, poor structure, irrelevant content, grammatical issues
- Do NOT give high scores (80+) unless answer is excellent and well-articulated
%s
DO NOT do the following:
- Do NOT be overly generous with scoring
- Do NOT praise vague or incomplete answers
- Do NOT ignore lack of structure or clarity
- Do NOT give credit for answers that don't directly address the question
- Do NOT overlook grammatical or communication issues

STRENGTHS: Identify ONLY 2-3 real, specific strengths (not generic praise)
IMPROVEMENTS: Identify MUST-HAVE 2-3 improvements (critical areas to work on)

Return ONLY valid JSON in this exact format (no markdown, no code blocks):
{
  "score": 65,
  "strengths": ["specific strength with detail"],
  "improvements": ["specific improvement that must be addressed"],
  "next_tip": "Concrete actionable advice"
}`,
		question, answer, profession, experienceLevel, levelNote)
}

// Summary builds the end-of-session report prompt from the full ordered
// list of answered questions.
func Summary(profession string, averageScore float64, responses []model.ResponseTuple) string {
	level := PerformanceLevel(averageScore)
	interviewData, _ := json.Marshal(responses)

	return fmt.Sprintf(`You are creating a comprehensive, HONEST interview summary. Be realistic and constructive.

Candidate Profile: %s (Average Score: %.1f/100, Performance: %s)

Interview Data: %s

CREATE A REALISTIC ASSESSMENT - NOT OVERLY POSITIVE:
- If average score is low (below 70), be honest about significant gaps
- Top strengths should be DEMONSTRATED in their answers, not assumed
- Improvement areas should be specific to their actual performance
- Roadmap should be realistic and actionable for their level

ROADMAP: Create 5 specific, measurable 30-day action items based on their actual weaknesses
- Focus on the biggest gaps identified
- Make items time-bound and actionable
- Prioritize by importance

Return ONLY valid JSON in this exact format (no markdown, no code blocks):
{
  "summary": "Honest 3-4 sentence assessment of overall performance with specific observations",
  "top_strengths": ["demonstrated strength 1", "demonstrated strength 2", "demonstrated strength 3"],
  "improvement_areas": ["critical area 1", "critical area 2", "critical area 3"],
  "roadmap": ["Week 1-2: specific action", "Week 2-3: specific action", "Week 3-4: specific action", "Week 4: specific action", "Ongoing: specific action"]
}`,
		profession, averageScore, level, interviewData)
}
