package draft

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/model"
	"hsemanager/internal/regschema"
	"hsemanager/internal/regwatch"
)

func snapshot(version string) Snapshot {
	state := regwatch.Seed(regschema.Get(model.VariantLabor), nil)
	state.SchemaVersion = version
	return Snapshot{
		SchemaVersion: version,
		Mode:          model.ModeNew,
		ProjectID:     "proj-1",
		WeekYear:      2026,
		WeekNumber:    12,
		Answers:       state,
	}
}

func TestKeyDerivation(t *testing.T) {
	// Same logical submission, same key
	assert.Equal(t,
		Key(model.ModeNew, "u1", ""),
		Key(model.ModeNew, "u1", ""))
	assert.Equal(t,
		Key(model.ModeResubmit, "u1", "sub-9"),
		Key(model.ModeResubmit, "u1", "sub-9"))

	// Different logical submissions, different keys
	keys := []string{
		Key(model.ModeNew, "u1", ""),
		Key(model.ModeNew, "u2", ""),
		Key(model.ModeResubmit, "u1", "sub-9"),
		Key(model.ModeResubmit, "u1", "sub-10"),
		Key(model.ModeNew, "", ""), // anonymous placeholder
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "key collision: %s", k)
		seen[k] = true
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())
	key := Key(model.ModeNew, "u1", "")

	snap := snapshot("labor-v2")
	store.Save(ctx, key, snap)

	got := store.Load(ctx, key, "labor-v2", model.ModeNew, "")
	require.NotNil(t, got)
	assert.Equal(t, snap.Answers, got.Answers)
	assert.Equal(t, "proj-1", got.ProjectID)
	assert.Equal(t, 12, got.WeekNumber)
	assert.False(t, got.SavedAt.IsZero())
}

func TestLoadVersionMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())
	key := Key(model.ModeNew, "u1", "")

	store.Save(ctx, key, snapshot("labor-v1"))

	assert.Nil(t, store.Load(ctx, key, "labor-v2", model.ModeNew, ""),
		"stale schema version must read as absent")
}

func TestLoadSubmissionMismatchInResubmit(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())
	key := Key(model.ModeResubmit, "u1", "sub-9")

	snap := snapshot("labor-v2")
	snap.Mode = model.ModeResubmit
	snap.SubmissionID = "sub-9"
	store.Save(ctx, key, snap)

	assert.NotNil(t, store.Load(ctx, key, "labor-v2", model.ModeResubmit, "sub-9"))
	assert.Nil(t, store.Load(ctx, key, "labor-v2", model.ModeResubmit, "sub-10"))
}

func TestLoadMalformedContent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv)
	key := Key(model.ModeNew, "u1", "")

	require.NoError(t, kv.Set(ctx, key, "{not json"))
	assert.Nil(t, store.Load(ctx, key, "labor-v2", model.ModeNew, ""))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())
	key := Key(model.ModeNew, "u1", "")

	store.Save(ctx, key, snapshot("labor-v2"))
	store.Clear(ctx, key)

	assert.Nil(t, store.Load(ctx, key, "labor-v2", model.ModeNew, ""))
}

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("storage down")
}
func (failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("storage down")
}
func (failingKV) Del(ctx context.Context, key string) error {
	return errors.New("storage down")
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewStore(failingKV{})
	key := Key(model.ModeNew, "u1", "")

	// None of these may panic or surface the error
	store.Save(ctx, key, snapshot("labor-v2"))
	assert.Nil(t, store.Load(ctx, key, "labor-v2", model.ModeNew, ""))
	store.Clear(ctx, key)
}
