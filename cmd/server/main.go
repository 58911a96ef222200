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

	"hsemanager/config"
	"hsemanager/internal/cache"
	"hsemanager/internal/draft"
	"hsemanager/internal/repository"
	"hsemanager/internal/service"
	"hsemanager/internal/transport/rest"
	"hsemanager/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	workerRepo := repository.NewWorkerRepo(db)
	permitRepo := repository.NewPermitRepo(db)
	inspectionRepo := repository.NewInspectionRepo(db)
	awarenessRepo := repository.NewAwarenessRepo(db)
	trainingRepo := repository.NewTrainingRepo(db)

	// Initialize caches
	draftKV := cache.NewDraftKV(rdb)
	scoreCache := cache.NewScoreCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	regwatchSvc := service.NewRegwatchService(submissionRepo, projectRepo, draft.NewStore(draftKV), scoreCache)
	projectSvc := service.NewProjectService(projectRepo)
	workerSvc := service.NewWorkerService(workerRepo, projectRepo)
	permitSvc := service.NewPermitService(permitRepo, projectRepo, workerRepo)
	inspectionSvc := service.NewInspectionService(inspectionRepo, projectRepo)
	awarenessSvc := service.NewAwarenessService(awarenessRepo, projectRepo, workerRepo)
	trainingSvc := service.NewTrainingService(trainingRepo, workerRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	regwatchSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		RegwatchService:   regwatchSvc,
		ProjectService:    projectSvc,
		WorkerService:     workerSvc,
		PermitService:     permitSvc,
		InspectionService: inspectionSvc,
		AwarenessService:  awarenessSvc,
		TrainingService:   trainingSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/regwatch/{variant}/catalogue")
		log.Println("  POST /v1/regwatch/start")
		log.Println("  PUT  /v1/regwatch/article")
		log.Println("  POST /v1/regwatch/submit")
		log.Println("  POST/GET /v1/projects")
		log.Println("  POST/GET /v1/projects/{projectId}/permits")
		log.Println("  WS  /v1/ws/projects/{projectId}/dashboard")

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
