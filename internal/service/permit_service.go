package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
	"hsemanager/internal/textutil"
)

// PermitService handles work permit issuance and closure
type PermitService struct {
	permitRepo  repository.PermitRepo
	projectRepo repository.ProjectRepo
	workerRepo  repository.WorkerRepo
}

// NewPermitService creates a new permit service
func NewPermitService(
	permitRepo repository.PermitRepo,
	projectRepo repository.ProjectRepo,
	workerRepo repository.WorkerRepo,
) *PermitService {
	return &PermitService{
		permitRepo:  permitRepo,
		projectRepo: projectRepo,
		workerRepo:  workerRepo,
	}
}

// Issue validates and creates an open permit with a generated number.
func (s *PermitService) Issue(ctx context.Context, permit *model.WorkPermit) (string, error) {
	if permit.Type == "" {
		return "", fmt.Errorf("permit type is required")
	}
	if permit.ValidUntil.Before(permit.ValidFrom) {
		return "", fmt.Errorf("permit validity window is inverted")
	}

	project, err := s.projectRepo.GetByID(ctx, permit.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return "", fmt.Errorf("project not found")
	}

	for _, wid := range permit.WorkerIDs {
		worker, err := s.workerRepo.GetByID(ctx, wid)
		if err != nil {
			return "", fmt.Errorf("failed to check worker %s: %w", wid, err)
		}
		if worker == nil {
			return "", fmt.Errorf("worker %s not found", wid)
		}
	}

	permit.Number = "PRM-" + uuid.New().String()[:8]
	permit.Status = model.PermitOpen
	permit.Precautions = textutil.FormatBulletText(permit.Precautions)
	return s.permitRepo.Create(ctx, permit)
}

func (s *PermitService) GetByID(ctx context.Context, id string) (*model.WorkPermit, error) {
	return s.permitRepo.GetByID(ctx, id)
}

func (s *PermitService) ListByProject(ctx context.Context, projectID string, openOnly bool) ([]*model.WorkPermit, error) {
	if openOnly {
		return s.permitRepo.ListOpenByProject(ctx, projectID)
	}
	return s.permitRepo.ListByProject(ctx, projectID)
}

// Close marks an open permit closed with an optional comment.
func (s *PermitService) Close(ctx context.Context, id, comment string) error {
	permit, err := s.permitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if permit == nil {
		return fmt.Errorf("permit not found")
	}
	if permit.Status != model.PermitOpen {
		return fmt.Errorf("permit is not open (status: %s)", permit.Status)
	}

	now := time.Now()
	permit.Status = model.PermitClosed
	permit.ClosedAt = &now
	permit.CloseComment = textutil.FormatBulletText(comment)
	return s.permitRepo.Update(ctx, permit)
}

func (s *PermitService) Delete(ctx context.Context, id string) error {
	return s.permitRepo.Delete(ctx, id)
}
