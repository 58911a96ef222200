package service

import (
	"context"
	"fmt"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
)

// WorkerService handles the project worker roster
type WorkerService struct {
	workerRepo  repository.WorkerRepo
	projectRepo repository.ProjectRepo
}

// NewWorkerService creates a new worker service
func NewWorkerService(workerRepo repository.WorkerRepo, projectRepo repository.ProjectRepo) *WorkerService {
	return &WorkerService{
		workerRepo:  workerRepo,
		projectRepo: projectRepo,
	}
}

func (s *WorkerService) Create(ctx context.Context, worker *model.Worker) (string, error) {
	if worker.FirstName == "" || worker.LastName == "" {
		return "", fmt.Errorf("worker first and last name are required")
	}
	project, err := s.projectRepo.GetByID(ctx, worker.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return "", fmt.Errorf("project not found")
	}
	return s.workerRepo.Create(ctx, worker)
}

func (s *WorkerService) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func (s *WorkerService) ListByProject(ctx context.Context, projectID string) ([]*model.Worker, error) {
	return s.workerRepo.ListByProject(ctx, projectID)
}

func (s *WorkerService) Update(ctx context.Context, worker *model.Worker) error {
	existing, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("worker not found")
	}
	worker.CreatedAt = existing.CreatedAt
	return s.workerRepo.Update(ctx, worker)
}

func (s *WorkerService) Delete(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}
