package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mockinterview/internal/model"
)

func TestPerformanceLevel(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{90, "Excellent"},
		{86, "Excellent"},
		{85, "Excellent"},
		{84.9, "Good"},
		{75, "Good"},
		{72, "Average"},
		{66.67, "Average"},
		{65, "Average"},
		{64.9, "Below Average"},
		{50, "Below Average"},
		{49.9, "Poor"},
		{0, "Poor"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PerformanceLevel(tc.avg), "average %.2f", tc.avg)
	}
}

func TestQuestionPrompt(t *testing.T) {
	p := Question("Data Scientist", "senior", 3, []string{"What is overfitting?", "Explain SQL joins"})

	assert.Contains(t, p, "senior-level Data Scientist")
	assert.Contains(t, p, "question 3 of 9")
	assert.Contains(t, p, "Avoid these questions: What is overfitting?, Explain SQL joins.")
	assert.Contains(t, p, `{"question"`)
	assert.Contains(t, p, "no markdown")
}

func TestQuestionPromptDefaults(t *testing.T) {
	p := Question("Product Manager", "", 1, nil)

	assert.Contains(t, p, "mid-level Product Manager")
	assert.Contains(t, p, "question 1 of 9")
	assert.NotContains(t, p, "Avoid these questions")
}

func TestEvaluationPrompt(t *testing.T) {
	p := Evaluation("Why Go?", "Because it is fast.", "Backend Engineer", "senior")

	assert.Contains(t, p, `Question: "Why Go?"`)
	assert.Contains(t, p, `Answer: "Because it is fast."`)
	assert.Contains(t, p, "STRICT interview evaluator")
	assert.Contains(t, p, "strategic thinking")
	assert.NotContains(t, p, "willingness to learn")

	junior := Evaluation("Why Go?", "Because it is fast.", "Backend Engineer", "junior")
	assert.Contains(t, junior, "willingness to learn")
	assert.NotContains(t, junior, "strategic thinking")
}

func TestSummaryPrompt(t *testing.T) {
	tuples := []model.ResponseTuple{
		{
			Question: "Why Go?",
			Answer:   "Concurrency support.",
			Feedback: model.Feedback{Score: 70, NextTip: "Add examples"},
		},
	}

	p := Summary("Backend Engineer", 66.666, tuples)

	assert.Contains(t, p, "Backend Engineer")
	assert.Contains(t, p, "Average Score: 66.7/100")
	assert.Contains(t, p, "Performance: Average")
	assert.Contains(t, p, "Why Go?")
	assert.Contains(t, p, "Concurrency support.")
	assert.Contains(t, p, `"Week 1-2: specific action"`)
}
