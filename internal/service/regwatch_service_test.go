package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/cache"
	"hsemanager/internal/draft"
	"hsemanager/internal/model"
)

type fakeSubmissionRepo struct {
	subs       map[string]*model.Submission
	nextID     int
	failCreate bool
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[string]*model.Submission)}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, sub *model.Submission) (string, error) {
	if r.failCreate {
		return "", errors.New("insert failed")
	}
	r.nextID++
	id := fmt.Sprintf("sub-%d", r.nextID)
	stored := *sub
	stored.ID = id
	r.subs[id] = &stored
	return id, nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return r.subs[id], nil
}

func (r *fakeSubmissionRepo) GetLatestByProject(ctx context.Context, projectID, schemaVersion string) (*model.Submission, error) {
	var latest *model.Submission
	for _, sub := range r.subs {
		if sub.ProjectID != projectID || sub.SchemaVersion != schemaVersion {
			continue
		}
		if latest == nil ||
			sub.WeekYear > latest.WeekYear ||
			(sub.WeekYear == latest.WeekYear && sub.WeekNumber > latest.WeekNumber) {
			latest = sub
		}
	}
	return latest, nil
}

func (r *fakeSubmissionRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Submission, error) {
	var subs []*model.Submission
	for _, sub := range r.subs {
		if sub.ProjectID == projectID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (r *fakeSubmissionRepo) Delete(ctx context.Context, id string) error {
	delete(r.subs, id)
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*model.Project
}

func newFakeProjectRepo(ids ...string) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[string]*model.Project)}
	for _, id := range ids {
		r.projects[id] = &model.Project{ID: id, Name: "Project " + id, Status: model.ProjectActive}
	}
	return r
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *model.Project) (string, error) {
	r.projects[project.ID] = project
	return project.ID, nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	for _, p := range r.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *model.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

type fakeScoreCache struct {
	latest map[string]*cache.ProjectScore
}

func newFakeScoreCache() *fakeScoreCache {
	return &fakeScoreCache{latest: make(map[string]*cache.ProjectScore)}
}

func (c *fakeScoreCache) SetLatest(ctx context.Context, score *cache.ProjectScore) error {
	c.latest[score.ProjectID+":"+score.Variant] = score
	return nil
}

func (c *fakeScoreCache) GetLatest(ctx context.Context, projectID string, variant model.SchemaVariant) (*cache.ProjectScore, error) {
	return c.latest[projectID+":"+string(variant)], nil
}

type broadcastEvent struct {
	projectID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	events []broadcastEvent
}

func (b *recordingBroadcaster) BroadcastToProject(projectID string, msgType string, payload interface{}) {
	b.events = append(b.events, broadcastEvent{projectID: projectID, msgType: msgType, payload: payload})
}

func newTestService(subRepo *fakeSubmissionRepo, projectRepo *fakeProjectRepo) *RegwatchService {
	return NewRegwatchService(subRepo, projectRepo, draft.NewStore(draft.NewMemoryKV()), newFakeScoreCache())
}

// findAnswer locates one article answer in a state by article id.
func findAnswer(t *testing.T, state model.AnswerState, articleID string) model.ArticleAnswer {
	t.Helper()
	for _, sec := range state.Sections {
		for _, a := range sec.Articles {
			if a.ArticleID == articleID {
				return a
			}
		}
	}
	t.Fatalf("article %s not found in state", articleID)
	return model.ArticleAnswer{}
}

func TestStartBlankSeed(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))

	res, err := svc.Start(context.Background(), "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceBlank, res.Source)
	assert.Empty(t, res.Warning)
	assert.Equal(t, "p1", res.ProjectID)
	assert.Equal(t, "labor-v2", res.Answers.SchemaVersion)
	for _, sec := range res.Answers.Sections {
		for _, a := range sec.Articles {
			assert.True(t, a.Applicable, "article %s", a.ArticleID)
			assert.True(t, a.Compliant, "article %s", a.ArticleID)
		}
	}
	require.NotNil(t, res.OverallScore)
	assert.Equal(t, 100.0, *res.OverallScore)
}

func TestStartUnknownVariant(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))

	_, err := svc.Start(context.Background(), "u1", &StartRequest{
		Variant: "nuclear",
		Mode:    model.ModeNew,
	})
	assert.Error(t, err)
}

func TestStartResubmitRequiresSubmissionID(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))

	_, err := svc.Start(context.Background(), "u1", &StartRequest{
		Variant: model.VariantLabor,
		Mode:    model.ModeResubmit,
	})
	assert.Error(t, err)
}

func TestStartCarriesForwardNonApplicable(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	svc := newTestService(subRepo, newFakeProjectRepo("p1"))
	ctx := context.Background()

	// Prior week: article 283 marked not applicable.
	seedLaborState(t, svc, "prior-user")
	patchArticle(t, svc, "prior-user", 0, 2, model.ArticlePatch{Applicable: boolPtr(false)})
	submitDraft(t, svc, "prior-user")

	res, err := svc.Start(ctx, "u2", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceCarryForward, res.Source)
	a := findAnswer(t, res.Answers, "283")
	assert.False(t, a.Applicable)
	assert.False(t, a.Compliant)
}

func TestStartResubmitAdoptsPriorSelection(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	svc := newTestService(subRepo, newFakeProjectRepo("p1"))
	ctx := context.Background()

	seedLaborState(t, svc, "prior-user")
	sub := submitDraft(t, svc, "prior-user")

	res, err := svc.Start(ctx, "u2", &StartRequest{
		Variant:      model.VariantLabor,
		Mode:         model.ModeResubmit,
		SubmissionID: sub.ID,
		ProjectID:    "ignored",
		WeekYear:     2030,
		WeekNumber:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceCarryForward, res.Source)
	assert.Equal(t, sub.ProjectID, res.ProjectID)
	assert.Equal(t, sub.WeekYear, res.WeekYear)
	assert.Equal(t, sub.WeekNumber, res.WeekNumber)
}

func TestStartResubmitMissingSubmissionDegradesToBlank(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))

	res, err := svc.Start(context.Background(), "u1", &StartRequest{
		Variant:      model.VariantLabor,
		Mode:         model.ModeResubmit,
		SubmissionID: "sub-gone",
		ProjectID:    "p1",
		WeekYear:     2026,
		WeekNumber:   14,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceBlank, res.Source)
	assert.NotEmpty(t, res.Warning)
}

func TestStartHydratesFromDraft(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))
	ctx := context.Background()

	seedLaborState(t, svc, "u1")
	patchArticle(t, svc, "u1", 0, 2, model.ArticlePatch{Applicable: boolPtr(false)})

	// Reopening resumes the draft instead of reseeding.
	res, err := svc.Start(ctx, "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceDraft, res.Source)
	assert.False(t, findAnswer(t, res.Answers, "283").Applicable)
}

func TestUpdateArticleWithoutStartFails(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))

	_, err := svc.UpdateArticle(context.Background(), "u1", &UpdateRequest{
		Variant: model.VariantLabor,
		Mode:    model.ModeNew,
		Patch:   model.ArticlePatch{Compliant: boolPtr(false)},
	})
	assert.Error(t, err)
}

// Exercises the full weekly round: open, adjust applicability and
// compliance, watch the score move, submit, and verify the draft is gone.
func TestQuestionnaireLifecycle(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	projectRepo := newFakeProjectRepo("p1")
	scoreCache := newFakeScoreCache()
	svc := NewRegwatchService(subRepo, projectRepo, draft.NewStore(draft.NewMemoryKV()), scoreCache)
	bc := &recordingBroadcaster{}
	svc.SetBroadcaster(bc)
	ctx := context.Background()

	start, err := svc.Start(ctx, "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)
	require.NotNil(t, start.OverallScore)
	assert.Equal(t, 100.0, *start.OverallScore)

	// Article 283 (section S-HYG, index 2) does not apply to this site.
	res, err := svc.UpdateArticle(ctx, "u1", &UpdateRequest{
		Variant:      model.VariantLabor,
		Mode:         model.ModeNew,
		SectionIndex: 0,
		ArticleIndex: 2,
		Patch: model.ArticlePatch{
			Applicable: boolPtr(false),
		},
	})
	require.NoError(t, err)
	a283 := findAnswer(t, res.Answers, "283")
	assert.False(t, a283.Applicable)
	assert.False(t, a283.Compliant)
	assert.Empty(t, a283.CorrectiveAction)
	assert.Empty(t, a283.Comment)

	// Article 284 is applicable but non-compliant.
	res, err = svc.UpdateArticle(ctx, "u1", &UpdateRequest{
		Variant:      model.VariantLabor,
		Mode:         model.ModeNew,
		SectionIndex: 0,
		ArticleIndex: 3,
		Patch: model.ArticlePatch{
			Compliant:        boolPtr(false),
			CorrectiveAction: strPtr("Install guard rails"),
		},
	})
	require.NoError(t, err)
	a284 := findAnswer(t, res.Answers, "284")
	assert.False(t, a284.Compliant)
	assert.Equal(t, "Install guard rails", a284.CorrectiveAction)

	// S-HYG: 5 applicable, 4 compliant. The other four sections stay at 100.
	require.NotEmpty(t, res.Scores)
	assert.Equal(t, "S-HYG", res.Scores[0].SectionID)
	assert.Equal(t, 5, res.Scores[0].TotalApplicable)
	assert.Equal(t, 4, res.Scores[0].TotalCompliant)
	require.NotNil(t, res.Scores[0].Score)
	assert.Equal(t, 80.0, *res.Scores[0].Score)
	require.NotNil(t, res.OverallScore)
	assert.Equal(t, 96.0, *res.OverallScore)

	sub, err := svc.Submit(ctx, "u1", &SubmitRequest{
		Variant: model.VariantLabor,
		Mode:    model.ModeNew,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)

	// The stored submission carries the draft state verbatim.
	stored, err := svc.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "p1", stored.ProjectID)
	assert.Equal(t, 2026, stored.WeekYear)
	assert.Equal(t, 14, stored.WeekNumber)
	assert.Equal(t, "u1", stored.SubmittedBy)
	assert.Equal(t, res.Answers, stored.Answers)
	require.NotNil(t, stored.OverallScore)
	assert.Equal(t, 96.0, *stored.OverallScore)

	// Dashboard side effects fired.
	require.Len(t, bc.events, 2)
	assert.Equal(t, "p1", bc.events[0].projectID)
	assert.Equal(t, "submission_received", bc.events[0].msgType)
	assert.Equal(t, "score_update", bc.events[1].msgType)
	cached, err := scoreCache.GetLatest(ctx, "p1", model.VariantLabor)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 96.0, *cached.OverallScore)

	// Draft is cleared: reopening seeds from the submission instead.
	again, err := svc.Start(ctx, "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceCarryForward, again.Source)
	assert.False(t, findAnswer(t, again.Answers, "283").Applicable)
	// Compliance judgments do not carry forward, only applicability.
	assert.True(t, findAnswer(t, again.Answers, "284").Compliant)
}

func TestSubmitValidatesSelection(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1", &StartRequest{
		Variant: model.VariantLabor,
		Mode:    model.ModeNew,
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "u1", &SubmitRequest{Variant: model.VariantLabor, Mode: model.ModeNew})
	assert.ErrorContains(t, err, "project")

	require.NoError(t, svc.UpdateSelection(ctx, "u1", &SelectionRequest{
		Variant: model.VariantLabor, Mode: model.ModeNew,
		ProjectID: "p1", WeekYear: 2026, WeekNumber: 99,
	}))
	_, err = svc.Submit(ctx, "u1", &SubmitRequest{Variant: model.VariantLabor, Mode: model.ModeNew})
	assert.ErrorContains(t, err, "week")
}

func TestSubmitUnknownProjectFails(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), newFakeProjectRepo("p1"))
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p-gone",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "u1", &SubmitRequest{Variant: model.VariantLabor, Mode: model.ModeNew})
	assert.ErrorContains(t, err, "not found")
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	subRepo.failCreate = true
	svc := newTestService(subRepo, newFakeProjectRepo("p1"))
	ctx := context.Background()

	seedLaborState(t, svc, "u1")
	patchArticle(t, svc, "u1", 0, 2, model.ArticlePatch{Applicable: boolPtr(false)})

	_, err := svc.Submit(ctx, "u1", &SubmitRequest{Variant: model.VariantLabor, Mode: model.ModeNew})
	require.Error(t, err)

	// The draft survived the failed submit.
	res, err := svc.Start(ctx, "u1", &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceDraft, res.Source)
	assert.False(t, findAnswer(t, res.Answers, "283").Applicable)
}

func TestLatestScoreFallsBackToRepo(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	svc := NewRegwatchService(subRepo, newFakeProjectRepo("p1"), draft.NewStore(draft.NewMemoryKV()), newFakeScoreCache())
	ctx := context.Background()

	seedLaborState(t, svc, "u1")
	sub := submitDraft(t, svc, "u1")
	// New service instance with an empty cache.
	svc2 := NewRegwatchService(subRepo, newFakeProjectRepo("p1"), draft.NewStore(draft.NewMemoryKV()), newFakeScoreCache())

	score, err := svc2.LatestScore(ctx, sub.ProjectID, model.VariantLabor)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, sub.ProjectID, score.ProjectID)
	require.NotNil(t, score.OverallScore)
	assert.Equal(t, 100.0, *score.OverallScore)
}

// seedLaborState opens a fresh labor questionnaire for userID on project
// p1, week 2026-14.
func seedLaborState(t *testing.T, svc *RegwatchService, userID string) *StartResult {
	t.Helper()
	res, err := svc.Start(context.Background(), userID, &StartRequest{
		Variant:    model.VariantLabor,
		Mode:       model.ModeNew,
		ProjectID:  "p1",
		WeekYear:   2026,
		WeekNumber: 14,
	})
	require.NoError(t, err)
	return res
}

func patchArticle(t *testing.T, svc *RegwatchService, userID string, sectionIdx, articleIdx int, patch model.ArticlePatch) model.AnswerState {
	t.Helper()
	res, err := svc.UpdateArticle(context.Background(), userID, &UpdateRequest{
		Variant:      model.VariantLabor,
		Mode:         model.ModeNew,
		SectionIndex: sectionIdx,
		ArticleIndex: articleIdx,
		Patch:        patch,
	})
	require.NoError(t, err)
	return res.Answers
}

func submitDraft(t *testing.T, svc *RegwatchService, userID string) *model.Submission {
	t.Helper()
	sub, err := svc.Submit(context.Background(), userID, &SubmitRequest{
		Variant: model.VariantLabor,
		Mode:    model.ModeNew,
	})
	require.NoError(t, err)
	return sub
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
