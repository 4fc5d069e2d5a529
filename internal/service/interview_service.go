package service

import (
	"context"
	"errors"
	"log"
	"time"

	"mockinterview/internal/cache"
	"mockinterview/internal/llm"
	"mockinterview/internal/model"
	"mockinterview/internal/prompt"
	"mockinterview/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoResponses     = errors.New("no responses found for this session")
)

// DefaultProfession is used when start is called without one.
const DefaultProfession = "Software Engineer"

// InterviewService drives a session from start through per-question
// feedback to the final report.
type InterviewService struct {
	sessionRepo  repository.SessionRepo
	responseRepo repository.ResponseRepo
	reportRepo   repository.ReportRepo
	sessionCache cache.SessionCache
	generator    llm.Generator
	broadcaster  Broadcaster
}

// NewInterviewService creates a new interview service. sessionCache may
// be nil when redis is unavailable.
func NewInterviewService(
	sessionRepo repository.SessionRepo,
	responseRepo repository.ResponseRepo,
	reportRepo repository.ReportRepo,
	sessionCache cache.SessionCache,
	generator llm.Generator,
) *InterviewService {
	return &InterviewService{
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
		reportRepo:   reportRepo,
		sessionCache: sessionCache,
		generator:    generator,
	}
}

// SetBroadcaster injects the WebSocket hub.
func (s *InterviewService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a new in-progress session at round 1. Nothing prevents
// a user from holding several in-progress sessions at once.
func (s *InterviewService) Start(ctx context.Context, userID, profession string) (*model.StartResponse, error) {
	if profession == "" {
		profession = DefaultProfession
	}

	session := &model.InterviewSession{
		UserID:     userID,
		Profession: profession,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, session)

	return &model.StartResponse{
		SessionID:  session.ID,
		Profession: session.Profession,
	}, nil
}

// NextQuestion generates one interview question. The question itself is
// not persisted; only an eventual answer records it, inside the
// QuestionResponse. An unanswered question leaves no trace.
func (s *InterviewService) NextQuestion(ctx context.Context, req *model.QuestionRequest) (model.GeneratedQuestion, error) {
	p := prompt.Question(req.Profession, req.ExperienceLevel, req.RoundNumber, req.PreviousQuestions)

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return model.GeneratedQuestion{}, err
	}

	question := NormalizeQuestion(raw)
	s.broadcast(req.SessionID, "question_asked", question)

	return question, nil
}

// SubmitAnswer evaluates one answer, persists the QuestionResponse and
// bumps the session round. The supplied roundNumber is stored as-is; it
// is not validated against the session's own counter.
func (s *InterviewService) SubmitAnswer(ctx context.Context, req *model.AnswerRequest) (model.Feedback, error) {
	p := prompt.Evaluation(req.Question, req.Answer, req.Profession, req.ExperienceLevel)

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return model.Feedback{}, err
	}

	feedback := NormalizeFeedback(raw)

	round := req.RoundNumber
	if round == 0 {
		round = 1
	}

	response := &model.QuestionResponse{
		SessionID:    req.SessionID,
		QuestionText: req.Question,
		UserAnswer:   req.Answer,
		AIFeedback:   feedback,
		RoundNumber:  round,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return model.Feedback{}, err
	}

	if err := s.sessionRepo.IncrementRound(ctx, req.SessionID); err != nil {
		return model.Feedback{}, err
	}
	s.cacheDelete(ctx, req.SessionID)

	s.broadcast(req.SessionID, "answer_scored", map[string]interface{}{
		"roundNumber": round,
		"score":       feedback.Score,
	})

	return feedback, nil
}

// Summary aggregates the session's answers into a FinalReport and marks
// the session completed. The report insert and the status update are
// two independent writes; a crash between them leaves a report for a
// session still marked in-progress.
func (s *InterviewService) Summary(ctx context.Context, req *model.SummaryRequest) (*model.FinalReport, error) {
	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}

	tuples := make([]model.ResponseTuple, 0, len(responses))
	total := 0
	for _, r := range responses {
		// A missing score decodes to 0 and counts as 0.
		total += r.AIFeedback.Score
		tuples = append(tuples, model.ResponseTuple{
			Question: r.QuestionText,
			Answer:   r.UserAnswer,
			Feedback: r.AIFeedback,
		})
	}
	averageScore := float64(total) / float64(len(responses))

	profession := req.Profession
	if profession == "" {
		profession = session.Profession
	}

	raw, err := s.generator.Generate(ctx, prompt.Summary(profession, averageScore, tuples))
	if err != nil {
		return nil, err
	}

	content := NormalizeReport(raw, averageScore)

	report := &model.FinalReport{
		SessionID:        req.SessionID,
		Summary:          content.Summary,
		TopStrengths:     content.TopStrengths,
		ImprovementAreas: content.ImprovementAreas,
		Roadmap:          content.Roadmap,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.MarkCompleted(ctx, req.SessionID, time.Now()); err != nil {
		return nil, err
	}
	s.cacheDelete(ctx, req.SessionID)

	s.broadcast(req.SessionID, "session_completed", map[string]interface{}{
		"averageScore": averageScore,
	})

	return report, nil
}

// getSession reads through the cache when one is configured.
func (s *InterviewService) getSession(ctx context.Context, id string) (*model.InterviewSession, error) {
	if s.sessionCache != nil {
		if session, err := s.sessionCache.Get(ctx, id); err == nil && session != nil {
			return session, nil
		}
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	s.cacheSet(ctx, session)
	return session, nil
}

func (s *InterviewService) cacheSet(ctx context.Context, session *model.InterviewSession) {
	if s.sessionCache == nil {
		return
	}
	if err := s.sessionCache.Set(ctx, session); err != nil {
		log.Printf("session cache set failed: %v", err)
	}
}

func (s *InterviewService) cacheDelete(ctx context.Context, id string) {
	if s.sessionCache == nil {
		return
	}
	if err := s.sessionCache.Delete(ctx, id); err != nil {
		log.Printf("session cache delete failed: %v", err)
	}
}

func (s *InterviewService) broadcast(sessionID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, msgType, payload)
	}
}
