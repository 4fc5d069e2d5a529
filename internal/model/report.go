package model

import "time"

// FinalReport is the end-of-session assessment. One per session.
type FinalReport struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	SessionID        string    `json:"sessionId" bson:"sessionId"`
	Summary          string    `json:"summary" bson:"summary"`
	TopStrengths     []string  `json:"top_strengths" bson:"top_strengths"`
	ImprovementAreas []string  `json:"improvement_areas" bson:"improvement_areas"`
	Roadmap          []string  `json:"roadmap" bson:"roadmap"`
	GeneratedAt      time.Time `json:"generatedAt" bson:"generatedAt"`
}

// ReportContent is the LLM-generated portion of a FinalReport.
type ReportContent struct {
	Summary          string   `json:"summary"`
	TopStrengths     []string `json:"top_strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
	Roadmap          []string `json:"roadmap"`
}
