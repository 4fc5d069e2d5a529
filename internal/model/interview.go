package model

// StartRequest is the request body for POST /interview/start.
type StartRequest struct {
	Profession string `json:"profession"`
}

// StartResponse is returned when a session is created.
type StartResponse struct {
	SessionID  string `json:"sessionId"`
	Profession string `json:"profession"`
}

// QuestionRequest is the request body for POST /interview/question.
type QuestionRequest struct {
	SessionID         string   `json:"sessionId"`
	RoundNumber       int      `json:"roundNumber"`
	PreviousQuestions []string `json:"previousQuestions"`
	Profession        string   `json:"profession"`
	ExperienceLevel   string   `json:"experienceLevel"`
}

// GeneratedQuestion is one LLM-generated interview question.
type GeneratedQuestion struct {
	Question  string `json:"question"`
	FocusArea string `json:"focus_area"`
}

// AnswerRequest is the request body for POST /interview/answer.
type AnswerRequest struct {
	SessionID       string `json:"sessionId"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	Profession      string `json:"profession"`
	ExperienceLevel string `json:"experienceLevel"`
	RoundNumber     int    `json:"roundNumber"`
}

// SummaryRequest is the request body for POST /interview/summary.
type SummaryRequest struct {
	SessionID  string `json:"sessionId"`
	Profession string `json:"profession"`
}

// ResponseTuple is one question/answer/feedback triple fed into the
// summary prompt.
type ResponseTuple struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Feedback Feedback `json:"feedback"`
}
