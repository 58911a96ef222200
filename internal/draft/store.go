// Package draft mirrors in-progress questionnaire state to a keyed
// store so an interrupted session can be resumed. Persistence here is
// best-effort: storage failures are swallowed and must never block the
// questionnaire itself.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hsemanager/internal/model"
)

// KV is the minimal keyed storage capability the adapter needs.
// Production uses the Redis-backed implementation in internal/cache;
// tests use the in-memory one from this package. Get returns ("", nil)
// when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Snapshot is everything needed to restore an interrupted questionnaire:
// the selection metadata plus the full answer-state.
type Snapshot struct {
	SchemaVersion string               `json:"schemaVersion"`
	Mode          model.SubmissionMode `json:"mode"`
	SubmissionID  string               `json:"submissionId,omitempty"`
	ProjectID     string               `json:"projectId"`
	WeekYear      int                  `json:"weekYear"`
	WeekNumber    int                  `json:"weekNumber"`
	Answers       model.AnswerState    `json:"answers"`
	SavedAt       time.Time            `json:"savedAt"`
}

const anonymousUser = "anonymous"

// Key derives the storage key for one logical draft. Two different
// logical submissions never collide; the same one always resolves to
// the same key across reloads.
func Key(mode model.SubmissionMode, userID, submissionID string) string {
	if userID == "" {
		userID = anonymousUser
	}
	if mode != model.ModeResubmit || submissionID == "" {
		return fmt.Sprintf("regwatch:draft:%s:%s:new", mode, userID)
	}
	return fmt.Sprintf("regwatch:draft:%s:%s:%s", mode, userID, submissionID)
}

// Store reads and writes draft snapshots through a KV capability.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save mirrors a snapshot under the key. Failures are logged and
// swallowed: losing a draft is acceptable, blocking the user is not.
func (s *Store) Save(ctx context.Context, key string, snap Snapshot) {
	snap.SavedAt = time.Now()
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("draft: marshal failed for %s: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		log.Printf("draft: save failed for %s: %v", key, err)
	}
}

// Load returns the snapshot stored under key, or nil when there is none.
// A snapshot whose schema version does not match wantVersion, or (in
// resubmit mode) whose submission id does not match wantSubmissionID, is
// treated as absent, not as an error. So is malformed content.
func (s *Store) Load(ctx context.Context, key, wantVersion string, mode model.SubmissionMode, wantSubmissionID string) *Snapshot {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Printf("draft: load failed for %s: %v", key, err)
		return nil
	}
	if data == "" {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil
	}
	if snap.SchemaVersion != wantVersion {
		return nil
	}
	if mode == model.ModeResubmit && snap.SubmissionID != wantSubmissionID {
		return nil
	}
	return &snap
}

// Clear deletes the draft under key, best-effort.
func (s *Store) Clear(ctx context.Context, key string) {
	if err := s.kv.Del(ctx, key); err != nil {
		log.Printf("draft: clear failed for %s: %v", key, err)
	}
}
