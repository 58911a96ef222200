package service

import (
	"context"
	"fmt"
	"time"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
)

// TrainingService handles qualification records of workers
type TrainingService struct {
	trainingRepo repository.TrainingRepo
	workerRepo   repository.WorkerRepo
}

// NewTrainingService creates a new training service
func NewTrainingService(trainingRepo repository.TrainingRepo, workerRepo repository.WorkerRepo) *TrainingService {
	return &TrainingService{
		trainingRepo: trainingRepo,
		workerRepo:   workerRepo,
	}
}

func (s *TrainingService) Create(ctx context.Context, training *model.Training) (string, error) {
	if training.Title == "" {
		return "", fmt.Errorf("training title is required")
	}
	worker, err := s.workerRepo.GetByID(ctx, training.WorkerID)
	if err != nil {
		return "", fmt.Errorf("failed to check worker: %w", err)
	}
	if worker == nil {
		return "", fmt.Errorf("worker not found")
	}
	if training.ExpiresAt != nil && training.ExpiresAt.Before(training.CertifiedAt) {
		return "", fmt.Errorf("training expires before its certification date")
	}
	return s.trainingRepo.Create(ctx, training)
}

func (s *TrainingService) GetByID(ctx context.Context, id string) (*model.Training, error) {
	return s.trainingRepo.GetByID(ctx, id)
}

// ListByWorker returns a worker's qualification records together with
// their current validity.
func (s *TrainingService) ListByWorker(ctx context.Context, workerID string) ([]*model.Training, []bool, error) {
	trainings, err := s.trainingRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now()
	expired := make([]bool, len(trainings))
	for i, t := range trainings {
		expired[i] = t.Expired(now)
	}
	return trainings, expired, nil
}

func (s *TrainingService) Update(ctx context.Context, training *model.Training) error {
	existing, err := s.trainingRepo.GetByID(ctx, training.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("training not found")
	}
	training.CreatedAt = existing.CreatedAt
	return s.trainingRepo.Update(ctx, training)
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	return s.trainingRepo.Delete(ctx, id)
}
