package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockinterview/internal/model"
	"mockinterview/internal/service"
	"mockinterview/internal/transport/ws"
)

// Minimal in-memory fakes so the full HTTP stack runs without Mongo,
// Redis or a live LLM.

type memUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	c := *u
	r.users[u.Email] = &c
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type memSessionRepo struct {
	sessions map[string]*model.InterviewSession
	nextID   int
}

func (r *memSessionRepo) Create(_ context.Context, s *model.InterviewSession) error {
	r.nextID++
	s.ID = fmt.Sprintf("sess-%d", r.nextID)
	s.Status = model.SessionInProgress
	s.StartedAt = time.Now()
	s.TotalQuestions = model.DefaultTotalQuestions
	s.CurrentRound = 1
	c := *s
	r.sessions[s.ID] = &c
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.InterviewSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *memSessionRepo) GetByUserID(_ context.Context, userID string) ([]*model.InterviewSession, error) {
	var out []*model.InterviewSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) IncrementRound(_ context.Context, id string) error {
	if s, ok := r.sessions[id]; ok {
		s.CurrentRound++
	}
	return nil
}

func (r *memSessionRepo) MarkCompleted(_ context.Context, id string, at time.Time) error {
	if s, ok := r.sessions[id]; ok {
		s.Status = model.SessionCompleted
		s.CompletedAt = &at
	}
	return nil
}

type memResponseRepo struct {
	responses []*model.QuestionResponse
}

func (r *memResponseRepo) Create(_ context.Context, resp *model.QuestionResponse) error {
	resp.ID = fmt.Sprintf("resp-%d", len(r.responses)+1)
	resp.AnsweredAt = time.Now()
	c := *resp
	r.responses = append(r.responses, &c)
	return nil
}

func (r *memResponseRepo) GetBySessionID(_ context.Context, sessionID string) ([]*model.QuestionResponse, error) {
	var out []*model.QuestionResponse
	for _, resp := range r.responses {
		if resp.SessionID == sessionID {
			out = append(out, resp)
		}
	}
	return out, nil
}

type memReportRepo struct {
	reports map[string]*model.FinalReport
}

func (r *memReportRepo) Create(_ context.Context, report *model.FinalReport) error {
	report.ID = "report-" + report.SessionID
	report.GeneratedAt = time.Now()
	c := *report
	r.reports[report.SessionID] = &c
	return nil
}

func (r *memReportRepo) GetBySessionID(_ context.Context, sessionID string) (*model.FinalReport, error) {
	report, ok := r.reports[sessionID]
	if !ok {
		return nil, nil
	}
	return report, nil
}

type cannedGenerator struct {
	outputs []string
}

func (g *cannedGenerator) Generate(_ context.Context, _ string) (string, error) {
	if len(g.outputs) == 0 {
		return "", fmt.Errorf("no canned output")
	}
	out := g.outputs[0]
	if len(g.outputs) > 1 {
		g.outputs = g.outputs[1:]
	}
	return out, nil
}

func newTestRouter(gen *cannedGenerator) http.Handler {
	userRepo := &memUserRepo{users: make(map[string]*model.User)}
	sessionRepo := &memSessionRepo{sessions: make(map[string]*model.InterviewSession)}
	responseRepo := &memResponseRepo{}
	reportRepo := &memReportRepo{reports: make(map[string]*model.FinalReport)}

	authSvc := service.NewAuthService(userRepo, "test-secret")
	interviewSvc := service.NewInterviewService(sessionRepo, responseRepo, reportRepo, nil, gen)

	return NewRouter(&Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		WSHub:            ws.NewHub(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&cannedGenerator{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestRouter(&cannedGenerator{})

	rec := doJSON(t, router, "POST", "/auth/register", "", model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var auth model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "ada@example.com", auth.User.Email)

	// Duplicate email is rejected.
	rec = doJSON(t, router, "POST", "/auth/register", "", model.RegisterRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")

	// Wrong password.
	rec = doJSON(t, router, "POST", "/auth/login", "", model.LoginRequest{
		Email: "ada@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "POST", "/auth/login", "", model.LoginRequest{
		Email: "ada@example.com", Password: "hunter22",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInterviewRequiresAuth(t *testing.T) {
	router := newTestRouter(&cannedGenerator{})

	rec := doJSON(t, router, "POST", "/interview/start", "", model.StartRequest{Profession: "QA"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, "POST", "/interview/start", "not-a-token", model.StartRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFullInterviewFlow(t *testing.T) {
	gen := &cannedGenerator{outputs: []string{
		"```json\n{\"question\": \"Why Go?\", \"focus_area\": \"Technical Skills\"}\n```",
		`{"score": 105, "strengths": ["direct"], "improvements": ["expand"], "next_tip": "elaborate"}`,
		`{"summary": "Decent showing.", "top_strengths": ["a", "b", "c"], "improvement_areas": ["x", "y", "z"], "roadmap": ["Week 1-2: a", "Week 2-3: b", "Week 3-4: c", "Week 4: d", "Ongoing: e"]}`,
	}}
	router := newTestRouter(gen)

	rec := doJSON(t, router, "POST", "/auth/register", "", model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22", Profession: "Backend Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var auth model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))

	// Start
	rec = doJSON(t, router, "POST", "/interview/start", auth.Token, model.StartRequest{Profession: "Backend Engineer"})
	require.Equal(t, http.StatusOK, rec.Code)
	var start model.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &start))
	assert.NotEmpty(t, start.SessionID)

	// Summary before any answers is a validation failure.
	rec = doJSON(t, router, "POST", "/interview/summary", auth.Token, model.SummaryRequest{SessionID: start.SessionID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Question
	rec = doJSON(t, router, "POST", "/interview/question", auth.Token, model.QuestionRequest{
		SessionID: start.SessionID, RoundNumber: 1, Profession: "Backend Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var q model.GeneratedQuestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "Why Go?", q.Question)

	// Answer; inflated score is clamped to 95.
	rec = doJSON(t, router, "POST", "/interview/answer", auth.Token, model.AnswerRequest{
		SessionID: start.SessionID, Question: q.Question, Answer: "Concurrency.", RoundNumber: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var fb model.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
	assert.Equal(t, 95, fb.Score)

	// Summary
	rec = doJSON(t, router, "POST", "/interview/summary", auth.Token, model.SummaryRequest{
		SessionID: start.SessionID, Profession: "Backend Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var report model.FinalReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Decent showing.", report.Summary)
	assert.Equal(t, start.SessionID, report.SessionID)
	assert.Len(t, report.Roadmap, 5)
}

func TestSummaryUnknownSessionIs404(t *testing.T) {
	router := newTestRouter(&cannedGenerator{})

	rec := doJSON(t, router, "POST", "/auth/register", "", model.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var auth model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))

	rec = doJSON(t, router, "POST", "/interview/summary", auth.Token, model.SummaryRequest{SessionID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
