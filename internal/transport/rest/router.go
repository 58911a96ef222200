package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"hsemanager/internal/service"
	"hsemanager/internal/transport/rest/handler"
	"hsemanager/internal/transport/rest/middleware"
	"hsemanager/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	RegwatchService   *service.RegwatchService
	ProjectService    *service.ProjectService
	WorkerService     *service.WorkerService
	PermitService     *service.PermitService
	InspectionService *service.InspectionService
	AwarenessService  *service.AwarenessService
	TrainingService   *service.TrainingService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	regwatchHandler := handler.NewRegwatchHandler(c.RegwatchService)
	projectHandler := handler.NewProjectHandler(c.ProjectService)
	workerHandler := handler.NewWorkerHandler(c.WorkerService, c.TrainingService)
	permitHandler := handler.NewPermitHandler(c.PermitService)
	inspectionHandler := handler.NewInspectionHandler(c.InspectionService)
	awarenessHandler := handler.NewAwarenessHandler(c.AwarenessService)
	trainingHandler := handler.NewTrainingHandler(c.TrainingService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/projects/{projectId}/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	api := v1.NewRoute().Subrouter()
	api.Use(authMW.RequireUser)

	// Regulatory watch
	api.HandleFunc("/regwatch/{variant}/catalogue", regwatchHandler.GetCatalogue).Methods("GET", "OPTIONS")
	api.HandleFunc("/regwatch/start", regwatchHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/regwatch/article", regwatchHandler.UpdateArticle).Methods("PUT", "OPTIONS")
	api.HandleFunc("/regwatch/selection", regwatchHandler.UpdateSelection).Methods("PUT", "OPTIONS")
	api.HandleFunc("/regwatch/submit", regwatchHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/regwatch/submissions/{submissionId}", regwatchHandler.GetSubmission).Methods("GET", "OPTIONS")

	// Projects
	api.HandleFunc("/projects", projectHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{projectId}", projectHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{projectId}", projectHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/projects/{projectId}", projectHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/submissions", regwatchHandler.ListSubmissions).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/score", regwatchHandler.LatestScore).Methods("GET", "OPTIONS")

	// Workers
	api.HandleFunc("/projects/{projectId}/workers", workerHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/workers", workerHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/workers/{workerId}", workerHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/workers/{workerId}", workerHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/workers/{workerId}", workerHandler.Delete).Methods("DELETE", "OPTIONS")

	// Work permits
	api.HandleFunc("/projects/{projectId}/permits", permitHandler.Issue).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/permits", permitHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/permits/{permitId}", permitHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/permits/{permitId}/close", permitHandler.Close).Methods("POST", "OPTIONS")
	api.HandleFunc("/permits/{permitId}", permitHandler.Delete).Methods("DELETE", "OPTIONS")

	// Inspections
	api.HandleFunc("/projects/{projectId}/inspections", inspectionHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/inspections", inspectionHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/inspections/{inspectionId}", inspectionHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/inspections/{inspectionId}", inspectionHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/inspections/{inspectionId}", inspectionHandler.Delete).Methods("DELETE", "OPTIONS")

	// Awareness sessions
	api.HandleFunc("/projects/{projectId}/awareness", awarenessHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/awareness", awarenessHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/awareness/{sessionId}", awarenessHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/awareness/{sessionId}", awarenessHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/awareness/{sessionId}", awarenessHandler.Delete).Methods("DELETE", "OPTIONS")

	// Trainings
	api.HandleFunc("/workers/{workerId}/trainings", trainingHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/workers/{workerId}/trainings", workerHandler.ListTrainings).Methods("GET", "OPTIONS")
	api.HandleFunc("/trainings/{trainingId}", trainingHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/trainings/{trainingId}", trainingHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/trainings/{trainingId}", trainingHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
