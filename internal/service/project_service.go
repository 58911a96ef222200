package service

import (
	"context"
	"fmt"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
)

// ProjectService handles project CRUD
type ProjectService struct {
	projectRepo repository.ProjectRepo
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepo) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) Create(ctx context.Context, project *model.Project) (string, error) {
	if project.Name == "" {
		return "", fmt.Errorf("project name is required")
	}
	if project.Status == "" {
		project.Status = model.ProjectActive
	}
	return s.projectRepo.Create(ctx, project)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, project *model.Project) error {
	if project.Name == "" {
		return fmt.Errorf("project name is required")
	}
	existing, err := s.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("project not found")
	}
	project.CreatedAt = existing.CreatedAt
	return s.projectRepo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
