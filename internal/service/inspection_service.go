package service

import (
	"context"
	"fmt"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
)

// InspectionService handles site inspections and their findings
type InspectionService struct {
	inspectionRepo repository.InspectionRepo
	projectRepo    repository.ProjectRepo
}

// NewInspectionService creates a new inspection service
func NewInspectionService(inspectionRepo repository.InspectionRepo, projectRepo repository.ProjectRepo) *InspectionService {
	return &InspectionService{
		inspectionRepo: inspectionRepo,
		projectRepo:    projectRepo,
	}
}

func (s *InspectionService) Create(ctx context.Context, inspection *model.Inspection) (string, error) {
	if inspection.Area == "" {
		return "", fmt.Errorf("inspection area is required")
	}
	project, err := s.projectRepo.GetByID(ctx, inspection.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return "", fmt.Errorf("project not found")
	}

	// An inspection with open high-severity findings cannot be
	// recorded satisfactory.
	if inspection.Result == model.InspectionSatisfactory {
		for _, f := range inspection.Findings {
			if f.Severity == "high" && f.ClosedAt == nil {
				return "", fmt.Errorf("satisfactory result is inconsistent with open high-severity findings")
			}
		}
	}

	return s.inspectionRepo.Create(ctx, inspection)
}

func (s *InspectionService) GetByID(ctx context.Context, id string) (*model.Inspection, error) {
	return s.inspectionRepo.GetByID(ctx, id)
}

func (s *InspectionService) ListByProject(ctx context.Context, projectID string) ([]*model.Inspection, error) {
	return s.inspectionRepo.ListByProject(ctx, projectID)
}

func (s *InspectionService) Update(ctx context.Context, inspection *model.Inspection) error {
	existing, err := s.inspectionRepo.GetByID(ctx, inspection.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("inspection not found")
	}
	inspection.CreatedAt = existing.CreatedAt
	return s.inspectionRepo.Update(ctx, inspection)
}

func (s *InspectionService) Delete(ctx context.Context, id string) error {
	return s.inspectionRepo.Delete(ctx, id)
}
