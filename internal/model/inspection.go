package model

import "time"

type InspectionResult string

const (
	InspectionSatisfactory   InspectionResult = "satisfactory"
	InspectionUnsatisfactory InspectionResult = "unsatisfactory"
)

// InspectionFinding is one observation raised during a site inspection.
type InspectionFinding struct {
	Description      string     `json:"description" bson:"description"`
	Severity         string     `json:"severity" bson:"severity"` // low, medium, high
	CorrectiveAction string     `json:"correctiveAction" bson:"correctiveAction"`
	DueDate          *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	ClosedAt         *time.Time `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}

// Inspection is a scheduled or ad-hoc site walkdown with its findings.
type Inspection struct {
	ID          string              `json:"id" bson:"_id,omitempty"`
	ProjectID   string              `json:"projectId" bson:"projectId"`
	Area        string              `json:"area" bson:"area"`
	Inspector   string              `json:"inspector" bson:"inspector"`
	PerformedAt time.Time           `json:"performedAt" bson:"performedAt"`
	Result      InspectionResult    `json:"result" bson:"result"`
	Findings    []InspectionFinding `json:"findings" bson:"findings"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// OpenFindings counts findings without a closure date.
func (i *Inspection) OpenFindings() int {
	open := 0
	for _, f := range i.Findings {
		if f.ClosedAt == nil {
			open++
		}
	}
	return open
}
