package model

import "time"

// Training is a qualification record for one worker (habilitation,
// certification, refresher). Expired trainings disqualify the worker
// for the matching permit types.
type Training struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	WorkerID      string     `json:"workerId" bson:"workerId"`
	Title         string     `json:"title" bson:"title"`
	Provider      string     `json:"provider" bson:"provider"`
	CertifiedAt   time.Time  `json:"certifiedAt" bson:"certifiedAt"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	CertificateNo string     `json:"certificateNo" bson:"certificateNo"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Expired reports whether the certification has lapsed at the given time.
func (t *Training) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
