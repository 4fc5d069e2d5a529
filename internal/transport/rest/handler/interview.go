package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mockinterview/internal/llm"
	"mockinterview/internal/model"
	"mockinterview/internal/service"
	"mockinterview/internal/transport/rest/middleware"
)

// InterviewHandler handles the session lifecycle endpoints.
type InterviewHandler struct {
	interviewSvc *service.InterviewService
}

// NewInterviewHandler creates a new interview handler.
func NewInterviewHandler(interviewSvc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewSvc: interviewSvc}
}

// Start handles POST /interview/start
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	resp, err := h.interviewSvc.Start(r.Context(), userID, req.Profession)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Question handles POST /interview/question
func (h *InterviewHandler) Question(w http.ResponseWriter, r *http.Request) {
	var req model.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.interviewSvc.NextQuestion(r.Context(), &req)
	if err != nil {
		writeInterviewError(w, err, "failed to generate question")
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// Answer handles POST /interview/answer
func (h *InterviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback, err := h.interviewSvc.SubmitAnswer(r.Context(), &req)
	if err != nil {
		writeInterviewError(w, err, "failed to evaluate answer")
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// Summary handles POST /interview/summary
func (h *InterviewHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req model.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.interviewSvc.Summary(r.Context(), &req)
	if err != nil {
		writeInterviewError(w, err, "failed to generate summary")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// writeInterviewError maps orchestrator errors to HTTP statuses.
// LLM shape problems never reach here; the normalizer absorbs them.
func writeInterviewError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoResponses):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, llm.ErrInvalidAPIKey),
		errors.Is(err, llm.ErrEndpointNotFound),
		errors.Is(err, llm.ErrRateLimited),
		errors.Is(err, llm.ErrUpstream),
		errors.Is(err, llm.ErrNotConfigured):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
