package service

import (
	"context"
	"fmt"

	"hsemanager/internal/model"
	"hsemanager/internal/repository"
	"hsemanager/internal/textutil"
)

// AwarenessService handles toolbox talks / sensitization sessions
type AwarenessService struct {
	awarenessRepo repository.AwarenessRepo
	projectRepo   repository.ProjectRepo
	workerRepo    repository.WorkerRepo
}

// NewAwarenessService creates a new awareness session service
func NewAwarenessService(
	awarenessRepo repository.AwarenessRepo,
	projectRepo repository.ProjectRepo,
	workerRepo repository.WorkerRepo,
) *AwarenessService {
	return &AwarenessService{
		awarenessRepo: awarenessRepo,
		projectRepo:   projectRepo,
		workerRepo:    workerRepo,
	}
}

func (s *AwarenessService) Create(ctx context.Context, session *model.AwarenessSession) (string, error) {
	if session.Topic == "" {
		return "", fmt.Errorf("session topic is required")
	}
	project, err := s.projectRepo.GetByID(ctx, session.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return "", fmt.Errorf("project not found")
	}

	for _, wid := range session.AttendeeIDs {
		worker, err := s.workerRepo.GetByID(ctx, wid)
		if err != nil {
			return "", fmt.Errorf("failed to check attendee %s: %w", wid, err)
		}
		if worker == nil {
			return "", fmt.Errorf("attendee %s not found", wid)
		}
	}

	session.Summary = textutil.FormatBulletText(session.Summary)
	return s.awarenessRepo.Create(ctx, session)
}

func (s *AwarenessService) GetByID(ctx context.Context, id string) (*model.AwarenessSession, error) {
	return s.awarenessRepo.GetByID(ctx, id)
}

func (s *AwarenessService) ListByProject(ctx context.Context, projectID string) ([]*model.AwarenessSession, error) {
	return s.awarenessRepo.ListByProject(ctx, projectID)
}

func (s *AwarenessService) Update(ctx context.Context, session *model.AwarenessSession) error {
	existing, err := s.awarenessRepo.GetByID(ctx, session.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("awareness session not found")
	}
	session.CreatedAt = existing.CreatedAt
	session.Summary = textutil.FormatBulletText(session.Summary)
	return s.awarenessRepo.Update(ctx, session)
}

func (s *AwarenessService) Delete(ctx context.Context, id string) error {
	return s.awarenessRepo.Delete(ctx, id)
}
