package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mockinterview/internal/cache"
	"mockinterview/internal/config"
	"mockinterview/internal/llm"
	"mockinterview/internal/repository"
	"mockinterview/internal/service"
	"mockinterview/internal/transport/rest"
	"mockinterview/internal/transport/ws"
)

const (
	mongoConnectRetries = 5
	mongoRetryDelay     = 2 * time.Second
)

// @title AI Mock Interview API
// @version 1.0
// @description Web-based mock-interview trainer with LLM-generated questions and feedback
// @host localhost:8080
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.LLM.IsEnabled() {
		log.Printf("LLM: model=%s, API key configured", cfg.LLM.Model)
	} else {
		log.Println("Warning: OPENROUTER_API_KEY not set, interview endpoints will fail")
	}

	// MongoDB connection with bounded startup retry. On final failure
	// the server still starts; database-dependent calls fail per-request.
	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatal("Invalid MongoDB configuration:", err)
	}
	defer mongoClient.Disconnect(ctx)

	connected := false
	for attempt := 1; attempt <= mongoConnectRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = mongoClient.Ping(pingCtx, nil)
		cancel()
		if err == nil {
			connected = true
			break
		}
		log.Printf("MongoDB connection attempt %d/%d failed: %v", attempt, mongoConnectRetries, err)
		if attempt < mongoConnectRetries {
			time.Sleep(mongoRetryDelay)
		}
	}
	if connected {
		log.Println("Connected to MongoDB")
	} else {
		log.Println("Warning: MongoDB unreachable, starting in limited mode")
	}

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection. Optional: a failed ping disables the session
	// cache rather than aborting startup.
	var sessionCache cache.SessionCache
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: Redis unreachable (%v), session cache disabled", err)
	} else {
		log.Println("Connected to Redis")
		sessionCache = cache.NewSessionCache(rdb)
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize services
	generator := llm.NewClient(cfg.LLM)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	interviewSvc := service.NewInterviewService(sessionRepo, responseRepo, reportRepo, sessionCache, generator)
	interviewSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		WSHub:            wsHub,
		StaticDir:        cfg.StaticDir,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /auth/register")
		log.Println("  POST /auth/login")
		log.Println("  POST /interview/start")
		log.Println("  POST /interview/question")
		log.Println("  POST /interview/answer")
		log.Println("  POST /interview/summary")
		log.Println("  WS   /ws/sessions/{sessionId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
