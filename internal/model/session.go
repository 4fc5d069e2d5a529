package model

import "time"

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in-progress"
	SessionCompleted  SessionStatus = "completed"
)

// DefaultTotalQuestions is the fixed length of an interview session.
const DefaultTotalQuestions = 9

// InterviewSession tracks one interview run for a user.
type InterviewSession struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	UserID         string        `json:"userId" bson:"userId"`
	Profession     string        `json:"profession" bson:"profession"`
	Status         SessionStatus `json:"status" bson:"status"`
	StartedAt      time.Time     `json:"startedAt" bson:"startedAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	TotalQuestions int           `json:"totalQuestions" bson:"totalQuestions"`
	CurrentRound   int           `json:"currentRound" bson:"currentRound"`
}
