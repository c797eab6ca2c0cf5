package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/recommend"
	"github.com/jordan/career-compass/internal/resolve"
	"github.com/jordan/career-compass/internal/server/middleware"
	"github.com/jordan/career-compass/internal/server/ratelimit"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	llmClient   llm.Client
	pipeline    *recommend.Pipeline
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration.
type Config struct {
	Port int
	App  *config.Config
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.App.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.App.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := &Server{
		db:        database,
		llmClient: llmClient,
	}

	resolver := NewResolver(cfg.App)
	s.pipeline = recommend.NewPipeline(database, llmClient, resolver, cfg.App.Verbose)

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // recommendation runs validate URLs live
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// NewResolver builds the course resolver from configuration: pattern-based
// probing first, scrape-based discovery second.
func NewResolver(cfg *config.Config) *resolve.Resolver {
	validator := resolve.NewValidator(cfg.ValidateTimeout, cfg.Verbose)
	strategies := []resolve.Strategy{
		resolve.NewPatternDiscovery(validator, cfg.Verbose),
		resolve.NewScrapeDiscovery(validator, cfg.UseBrowser, cfg.ValidateTimeout*2, cfg.Verbose),
	}
	return resolve.NewResolver(strategies,
		resolve.WithTimeout(cfg.ResolveTimeout),
		resolve.WithConcurrency(cfg.ResolveConcurrency),
		resolve.WithVerbose(cfg.Verbose),
	)
}

// routes builds the request mux. Authenticated routes are wrapped with the
// JWT middleware individually.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Questionnaire
	mux.HandleFunc("GET /questions", s.handleListQuestions)
	mux.Handle("POST /questions", auth(http.HandlerFunc(s.handleCreateQuestion)))
	mux.Handle("DELETE /questions/{id}", auth(http.HandlerFunc(s.handleDeleteQuestion)))
	mux.Handle("POST /answers", auth(http.HandlerFunc(s.handleSaveAnswers)))
	mux.Handle("GET /profile", auth(http.HandlerFunc(s.handleGetProfile)))

	// Courses
	mux.Handle("GET /courses", auth(http.HandlerFunc(s.handleListCourses)))
	mux.Handle("POST /courses", auth(http.HandlerFunc(s.handleSaveCourses)))
	mux.Handle("DELETE /courses", auth(http.HandlerFunc(s.handleDeleteCourses)))

	// Recommendations
	mux.Handle("POST /recommendations", auth(http.HandlerFunc(s.handleRunRecommendations)))
	mux.Handle("GET /summary", auth(http.HandlerFunc(s.handleGetSummary)))

	// Announcements
	mux.HandleFunc("GET /announcements", s.handleListAnnouncements)
	mux.Handle("POST /announcements", auth(http.HandlerFunc(s.handleCreateAnnouncement)))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP from RemoteAddr; X-Forwarded-For would only be safe behind a
// trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
