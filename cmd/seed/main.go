package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hsemanager/config"
	"hsemanager/internal/model"
	"hsemanager/internal/regschema"
	"hsemanager/internal/regwatch"
	"hsemanager/internal/repository"
)

// Seeds a demo project with a worker roster and one submitted
// regulatory-watch questionnaire so the dashboard has data to show.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	projectRepo := repository.NewProjectRepo(db)
	workerRepo := repository.NewWorkerRepo(db)
	trainingRepo := repository.NewTrainingRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	projectID, err := projectRepo.Create(ctx, &model.Project{
		Name:      "Port Extension Phase 2",
		Client:    "Marsa Maroc",
		Location:  "Casablanca",
		Status:    model.ProjectActive,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		log.Fatalf("Failed to insert project: %v", err)
	}

	workers := []*model.Worker{
		{ProjectID: projectID, FirstName: "Youssef", LastName: "Bennani", BadgeID: "B-1042", Trade: "welder", Company: "SGTM", MedicalFit: true, HiredAt: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ProjectID: projectID, FirstName: "Rachid", LastName: "El Amrani", BadgeID: "B-1043", Trade: "scaffolder", Company: "SGTM", MedicalFit: true, HiredAt: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ProjectID: projectID, FirstName: "Samira", LastName: "Ouazzani", BadgeID: "B-1044", Trade: "electrician", Company: "Cegelec", MedicalFit: true, HiredAt: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, w := range workers {
		if _, err := workerRepo.Create(ctx, w); err != nil {
			log.Fatalf("Failed to insert worker: %v", err)
		}
	}

	expiry := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err = trainingRepo.Create(ctx, &model.Training{
		WorkerID:      workers[0].ID,
		Title:         "Hot work certification",
		Provider:      "OFPPT",
		CertifiedAt:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ExpiresAt:     &expiry,
		CertificateNo: "HW-2026-118",
	})
	if err != nil {
		log.Fatalf("Failed to insert training: %v", err)
	}

	// One submitted labor questionnaire, fully compliant except one
	// non-applicable article, so the score is a realistic non-100 value.
	cat := regschema.Get(model.VariantLabor)
	state := regwatch.Seed(cat, map[string]struct{}{"289": {}})

	sub := &model.Submission{
		ProjectID:     projectID,
		WeekYear:      2026,
		WeekNumber:    34,
		SchemaVersion: cat.SchemaVersion,
		Answers:       state,
		Scores:        regwatch.ScoreSections(state),
		OverallScore:  regwatch.OverallScore(state),
		SubmittedBy:   "user_seed0000",
	}
	if _, err := submissionRepo.Create(ctx, sub); err != nil {
		log.Fatalf("Failed to insert submission: %v", err)
	}

	fmt.Printf("Seeded project %s with %d workers and one submission (week %d-%d)\n",
		projectID, len(workers), sub.WeekYear, sub.WeekNumber)
}
