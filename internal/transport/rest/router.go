package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"creativestyle/internal/logger"
	"creativestyle/internal/service"
	"creativestyle/internal/transport/rest/handler"
	"creativestyle/internal/transport/rest/middleware"
	"creativestyle/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SubmissionService *service.SubmissionService
	ResultService     *service.ResultService
	AdminService      *service.AdminService
	WSHub             *ws.Hub
	Logger            *logger.Logger
	AllowedOrigins    string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.SubmissionService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService, c.Logger)
	resultHandler := handler.NewResultHandler(c.ResultService, c.Logger)
	adminHandler := handler.NewAdminHandler(c.AdminService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.AllowedOrigins))
	r.Use(middleware.AccessLog(c.Logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/start", submissionHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/submit-response", submissionHandler.SubmitResponse).Methods("POST", "OPTIONS")
	api.HandleFunc("/complete/{submissionId}", submissionHandler.Complete).Methods("POST", "OPTIONS")
	api.HandleFunc("/results/{submissionId}", resultHandler.Get).Methods("GET", "OPTIONS")

	api.HandleFunc("/admin/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/admin/auth/verify", authHandler.Verify).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	api.HandleFunc("/admin/ws", wsHandler.AdminWS).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/submissions", adminHandler.ListSubmissions).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/submissions/{submissionId}", adminHandler.GetSubmission).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/simulate", adminHandler.Simulate).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/stats", adminHandler.Stats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
