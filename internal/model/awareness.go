package model

import "time"

// AwarenessSession is a toolbox talk / sensitization session held on site.
type AwarenessSession struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ProjectID   string    `json:"projectId" bson:"projectId"`
	Topic       string    `json:"topic" bson:"topic"`
	Summary     string    `json:"summary" bson:"summary"` // bullet text, normalized on write
	Animator    string    `json:"animator" bson:"animator"`
	HeldAt      time.Time `json:"heldAt" bson:"heldAt"`
	DurationMin int       `json:"durationMin" bson:"durationMin"`
	AttendeeIDs []string  `json:"attendeeIds" bson:"attendeeIds"` // worker ids
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
