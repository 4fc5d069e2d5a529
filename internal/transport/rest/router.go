package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mockinterview/internal/service"
	"mockinterview/internal/transport/rest/handler"
	"mockinterview/internal/transport/rest/middleware"
	"mockinterview/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService      *service.AuthService
	InterviewService *service.InterviewService
	WSHub            *ws.Hub
	StaticDir        string
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Public routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	r.HandleFunc("/ws/sessions/{sessionId}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Interview routes (require auth)
	interviewRoutes := r.PathPrefix("/interview").Subrouter()
	interviewRoutes.Use(authMW.RequireUser)

	interviewRoutes.HandleFunc("/start", interviewHandler.Start).Methods("POST", "OPTIONS")
	interviewRoutes.HandleFunc("/question", interviewHandler.Question).Methods("POST", "OPTIONS")
	interviewRoutes.HandleFunc("/answer", interviewHandler.Answer).Methods("POST", "OPTIONS")
	interviewRoutes.HandleFunc("/summary", interviewHandler.Summary).Methods("POST", "OPTIONS")

	// Static client
	if c.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(c.StaticDir)))
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
