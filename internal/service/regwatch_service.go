package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"hsemanager/internal/cache"
	"hsemanager/internal/draft"
	"hsemanager/internal/model"
	"hsemanager/internal/regschema"
	"hsemanager/internal/regwatch"
	"hsemanager/internal/repository"
)

// Seed sources reported back to the caller so the UI can tell the user
// where the questionnaire came from.
const (
	SourceDraft        = "draft"
	SourceCarryForward = "carry_forward"
	SourceBlank        = "blank"
)

// RegwatchService drives the regulatory-watch questionnaire lifecycle:
// start (hydrate from draft or seed from the last submission), article
// updates mirrored to the draft store, and final submission.
type RegwatchService struct {
	subRepo     repository.SubmissionRepo
	projectRepo repository.ProjectRepo
	drafts      *draft.Store
	scoreCache  cache.ScoreCache
	broadcaster Broadcaster
}

// NewRegwatchService creates a new regulatory-watch service
func NewRegwatchService(
	subRepo repository.SubmissionRepo,
	projectRepo repository.ProjectRepo,
	drafts *draft.Store,
	scoreCache cache.ScoreCache,
) *RegwatchService {
	return &RegwatchService{
		subRepo:     subRepo,
		projectRepo: projectRepo,
		drafts:      drafts,
		scoreCache:  scoreCache,
	}
}

// SetBroadcaster sets the broadcaster for dashboard events
func (s *RegwatchService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// StartRequest identifies the questionnaire session being opened.
type StartRequest struct {
	Variant      model.SchemaVariant  `json:"variant"`
	Mode         model.SubmissionMode `json:"mode"`
	SubmissionID string               `json:"submissionId,omitempty"`
	ProjectID    string               `json:"projectId"`
	WeekYear     int                  `json:"weekYear"`
	WeekNumber   int                  `json:"weekNumber"`
}

// StartResult is the ready-to-edit questionnaire handed to the client.
type StartResult struct {
	Source       string               `json:"source"`
	Warning      string               `json:"warning,omitempty"`
	ProjectID    string               `json:"projectId"`
	WeekYear     int                  `json:"weekYear"`
	WeekNumber   int                  `json:"weekNumber"`
	Answers      model.AnswerState    `json:"answers"`
	Scores       []model.SectionScore `json:"scores"`
	OverallScore *float64             `json:"overallScore"`
}

// Start opens a questionnaire session for one user. A compatible draft
// short-circuits server seeding entirely; otherwise the answer-state is
// seeded from the referenced submission (resubmit), from the project's
// latest submission (new), or blank when there is none. A failed seed
// fetch degrades to a blank seed with a warning, never to an error.
func (s *RegwatchService) Start(ctx context.Context, userID string, req *StartRequest) (*StartResult, error) {
	cat := regschema.Get(req.Variant)
	if cat == nil {
		return nil, fmt.Errorf("unknown schema variant %q", req.Variant)
	}
	if req.Mode == model.ModeResubmit && req.SubmissionID == "" {
		return nil, fmt.Errorf("resubmit mode requires a submission id")
	}

	key := draft.Key(req.Mode, userID, req.SubmissionID)
	if snap := s.drafts.Load(ctx, key, cat.SchemaVersion, req.Mode, req.SubmissionID); snap != nil {
		return s.result(SourceDraft, "", snap.ProjectID, snap.WeekYear, snap.WeekNumber, snap.Answers), nil
	}

	result := s.seedFromServer(ctx, cat, req)

	s.drafts.Save(ctx, key, draft.Snapshot{
		SchemaVersion: cat.SchemaVersion,
		Mode:          req.Mode,
		SubmissionID:  req.SubmissionID,
		ProjectID:     result.ProjectID,
		WeekYear:      result.WeekYear,
		WeekNumber:    result.WeekNumber,
		Answers:       result.Answers,
	})
	return result, nil
}

func (s *RegwatchService) seedFromServer(ctx context.Context, cat *model.Catalogue, req *StartRequest) *StartResult {
	var prior *model.Submission
	var err error
	warning := ""

	switch req.Mode {
	case model.ModeResubmit:
		prior, err = s.subRepo.GetByID(ctx, req.SubmissionID)
		if err != nil {
			warning = "could not load the submission to correct, starting from a blank questionnaire"
		} else if prior == nil {
			warning = "submission to correct was not found, starting from a blank questionnaire"
		}
	default:
		prior, err = s.subRepo.GetLatestByProject(ctx, req.ProjectID, cat.SchemaVersion)
		if err != nil {
			warning = "could not load the previous submission, starting from a blank questionnaire"
		}
	}

	if warning != "" {
		log.Printf("regwatch: seed fetch degraded for project %s: %v", req.ProjectID, err)
	}

	projectID, weekYear, weekNumber := req.ProjectID, req.WeekYear, req.WeekNumber
	source := SourceBlank
	var prev map[string]struct{}
	if prior != nil {
		prev = prior.NonApplicableArticleIDs()
		source = SourceCarryForward
		if req.Mode == model.ModeResubmit {
			projectID = prior.ProjectID
			weekYear = prior.WeekYear
			weekNumber = prior.WeekNumber
		}
	}

	state := regwatch.Seed(cat, prev)
	return s.result(source, warning, projectID, weekYear, weekNumber, state)
}

func (s *RegwatchService) result(source, warning, projectID string, weekYear, weekNumber int, state model.AnswerState) *StartResult {
	return &StartResult{
		Source:       source,
		Warning:      warning,
		ProjectID:    projectID,
		WeekYear:     weekYear,
		WeekNumber:   weekNumber,
		Answers:      state,
		Scores:       regwatch.ScoreSections(state),
		OverallScore: regwatch.OverallScore(state),
	}
}

// UpdateRequest patches one article of the active draft.
type UpdateRequest struct {
	Variant      model.SchemaVariant  `json:"variant"`
	Mode         model.SubmissionMode `json:"mode"`
	SubmissionID string               `json:"submissionId,omitempty"`
	SectionIndex int                  `json:"sectionIndex"`
	ArticleIndex int                  `json:"articleIndex"`
	Patch        model.ArticlePatch   `json:"patch"`
}

// UpdateArticle applies a patch to the caller's draft and mirrors the
// new state back to the draft store. The questionnaire must have been
// opened with Start first.
func (s *RegwatchService) UpdateArticle(ctx context.Context, userID string, req *UpdateRequest) (*StartResult, error) {
	cat := regschema.Get(req.Variant)
	if cat == nil {
		return nil, fmt.Errorf("unknown schema variant %q", req.Variant)
	}

	key := draft.Key(req.Mode, userID, req.SubmissionID)
	snap := s.drafts.Load(ctx, key, cat.SchemaVersion, req.Mode, req.SubmissionID)
	if snap == nil {
		return nil, fmt.Errorf("no active questionnaire for this session, open it first")
	}

	next, err := regwatch.Apply(snap.Answers, req.SectionIndex, req.ArticleIndex, req.Patch)
	if err != nil {
		return nil, err
	}

	snap.Answers = next
	s.drafts.Save(ctx, key, *snap)

	return s.result(SourceDraft, "", snap.ProjectID, snap.WeekYear, snap.WeekNumber, next), nil
}

// SelectionRequest updates the draft's project/week selection.
type SelectionRequest struct {
	Variant      model.SchemaVariant  `json:"variant"`
	Mode         model.SubmissionMode `json:"mode"`
	SubmissionID string               `json:"submissionId,omitempty"`
	ProjectID    string               `json:"projectId"`
	WeekYear     int                  `json:"weekYear"`
	WeekNumber   int                  `json:"weekNumber"`
}

// UpdateSelection mirrors a project/week selection change to the draft.
func (s *RegwatchService) UpdateSelection(ctx context.Context, userID string, req *SelectionRequest) error {
	cat := regschema.Get(req.Variant)
	if cat == nil {
		return fmt.Errorf("unknown schema variant %q", req.Variant)
	}

	key := draft.Key(req.Mode, userID, req.SubmissionID)
	snap := s.drafts.Load(ctx, key, cat.SchemaVersion, req.Mode, req.SubmissionID)
	if snap == nil {
		return fmt.Errorf("no active questionnaire for this session, open it first")
	}

	snap.ProjectID = req.ProjectID
	snap.WeekYear = req.WeekYear
	snap.WeekNumber = req.WeekNumber
	s.drafts.Save(ctx, key, *snap)
	return nil
}

// SubmitRequest finalizes the active draft.
type SubmitRequest struct {
	Variant      model.SchemaVariant  `json:"variant"`
	Mode         model.SubmissionMode `json:"mode"`
	SubmissionID string               `json:"submissionId,omitempty"`
}

// Submit validates and persists the caller's draft as a submission,
// then clears the draft. On any failure the draft is preserved so the
// user can retry.
func (s *RegwatchService) Submit(ctx context.Context, userID string, req *SubmitRequest) (*model.Submission, error) {
	cat := regschema.Get(req.Variant)
	if cat == nil {
		return nil, fmt.Errorf("unknown schema variant %q", req.Variant)
	}

	key := draft.Key(req.Mode, userID, req.SubmissionID)
	snap := s.drafts.Load(ctx, key, cat.SchemaVersion, req.Mode, req.SubmissionID)
	if snap == nil {
		return nil, fmt.Errorf("no active questionnaire for this session, open it first")
	}

	if snap.ProjectID == "" {
		return nil, fmt.Errorf("select a project before submitting")
	}
	if snap.WeekYear <= 0 {
		return nil, fmt.Errorf("select a year before submitting")
	}
	if snap.WeekNumber < 1 || snap.WeekNumber > 53 {
		return nil, fmt.Errorf("week number must be between 1 and 53")
	}

	project, err := s.projectRepo.GetByID(ctx, snap.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}

	sub := &model.Submission{
		ProjectID:     snap.ProjectID,
		WeekYear:      snap.WeekYear,
		WeekNumber:    snap.WeekNumber,
		SchemaVersion: cat.SchemaVersion,
		Answers:       snap.Answers,
		Scores:        regwatch.ScoreSections(snap.Answers),
		OverallScore:  regwatch.OverallScore(snap.Answers),
		SubmittedBy:   userID,
	}

	id, err := s.subRepo.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	sub.ID = id

	// Submission is durable from here on: draft cleanup and dashboard
	// refreshes are best-effort.
	s.drafts.Clear(ctx, key)

	if s.scoreCache != nil {
		err := s.scoreCache.SetLatest(ctx, &cache.ProjectScore{
			ProjectID:    sub.ProjectID,
			Variant:      string(req.Variant),
			WeekYear:     sub.WeekYear,
			WeekNumber:   sub.WeekNumber,
			OverallScore: sub.OverallScore,
			SubmittedAt:  time.Now(),
		})
		if err != nil {
			log.Printf("regwatch: score cache update failed for project %s: %v", sub.ProjectID, err)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToProject(sub.ProjectID, "submission_received", map[string]interface{}{
			"submissionId": sub.ID,
			"variant":      string(req.Variant),
			"weekYear":     sub.WeekYear,
			"weekNumber":   sub.WeekNumber,
			"overallScore": sub.OverallScore,
		})
		s.broadcaster.BroadcastToProject(sub.ProjectID, "score_update", map[string]interface{}{
			"projectId":    sub.ProjectID,
			"variant":      string(req.Variant),
			"overallScore": sub.OverallScore,
			"scores":       sub.Scores,
		})
	}

	return sub, nil
}

// GetSubmission returns one submission by id (nil when absent).
func (s *RegwatchService) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	return s.subRepo.GetByID(ctx, id)
}

// ListSubmissions returns a project's submission history, newest first.
func (s *RegwatchService) ListSubmissions(ctx context.Context, projectID string) ([]*model.Submission, error) {
	return s.subRepo.ListByProject(ctx, projectID)
}

// LatestScore returns the cached headline score of a project, falling
// back to the latest stored submission when the cache has nothing.
func (s *RegwatchService) LatestScore(ctx context.Context, projectID string, variant model.SchemaVariant) (*cache.ProjectScore, error) {
	if s.scoreCache != nil {
		score, err := s.scoreCache.GetLatest(ctx, projectID, variant)
		if err == nil && score != nil {
			return score, nil
		}
		if err != nil {
			log.Printf("regwatch: score cache read failed for project %s: %v", projectID, err)
		}
	}

	cat := regschema.Get(variant)
	if cat == nil {
		return nil, fmt.Errorf("unknown schema variant %q", variant)
	}
	sub, err := s.subRepo.GetLatestByProject(ctx, projectID, cat.SchemaVersion)
	if err != nil || sub == nil {
		return nil, err
	}
	return &cache.ProjectScore{
		ProjectID:    sub.ProjectID,
		Variant:      string(variant),
		WeekYear:     sub.WeekYear,
		WeekNumber:   sub.WeekNumber,
		OverallScore: sub.OverallScore,
		SubmittedAt:  sub.CreatedAt,
	}, nil
}
