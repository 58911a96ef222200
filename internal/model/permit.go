package model

import "time"

type PermitType string

const (
	PermitHotWork       PermitType = "hot_work"
	PermitConfinedSpace PermitType = "confined_space"
	PermitWorkAtHeight  PermitType = "work_at_height"
	PermitExcavation    PermitType = "excavation"
	PermitElectrical    PermitType = "electrical"
)

type PermitStatus string

const (
	PermitOpen    PermitStatus = "open"
	PermitClosed  PermitStatus = "closed"
	PermitExpired PermitStatus = "expired"
)

// WorkPermit authorizes a hazardous task on a project for a bounded window.
type WorkPermit struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Number       string       `json:"number" bson:"number"` // e.g. "PRM-1a2b3c4d"
	ProjectID    string       `json:"projectId" bson:"projectId"`
	Type         PermitType   `json:"type" bson:"type"`
	Status       PermitStatus `json:"status" bson:"status"`
	Description  string       `json:"description" bson:"description"`
	Precautions  string       `json:"precautions" bson:"precautions"` // bullet text, normalized on write
	WorkerIDs    []string     `json:"workerIds" bson:"workerIds"`
	IssuedBy     string       `json:"issuedBy" bson:"issuedBy"`
	ValidFrom    time.Time    `json:"validFrom" bson:"validFrom"`
	ValidUntil   time.Time    `json:"validUntil" bson:"validUntil"`
	ClosedAt     *time.Time   `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
	CloseComment string       `json:"closeComment,omitempty" bson:"closeComment,omitempty"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}
