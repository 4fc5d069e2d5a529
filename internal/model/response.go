package model

import "time"

// Feedback is the per-answer AI evaluation.
type Feedback struct {
	Score        int      `json:"score" bson:"score"`
	Strengths    []string `json:"strengths" bson:"strengths"`
	Improvements []string `json:"improvements" bson:"improvements"`
	NextTip      string   `json:"next_tip" bson:"next_tip"`
}

// QuestionResponse is one answered question within a session.
// Immutable once written.
type QuestionResponse struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	SessionID    string    `json:"sessionId" bson:"sessionId"`
	QuestionText string    `json:"questionText" bson:"questionText"`
	UserAnswer   string    `json:"userAnswer" bson:"userAnswer"`
	AIFeedback   Feedback  `json:"aiFeedback" bson:"aiFeedback"`
	RoundNumber  int       `json:"roundNumber" bson:"roundNumber"`
	AnsweredAt   time.Time `json:"answeredAt" bson:"answeredAt"`
}
