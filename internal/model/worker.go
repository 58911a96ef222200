package model

import "time"

// Worker is a roster entry for one person assigned to a project.
type Worker struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ProjectID  string    `json:"projectId" bson:"projectId"`
	FirstName  string    `json:"firstName" bson:"firstName"`
	LastName   string    `json:"lastName" bson:"lastName"`
	BadgeID    string    `json:"badgeId" bson:"badgeId"`
	Trade      string    `json:"trade" bson:"trade"` // electrician, scaffolder, welder...
	Company    string    `json:"company" bson:"company"`
	HiredAt    time.Time `json:"hiredAt" bson:"hiredAt"`
	MedicalFit bool      `json:"medicalFit" bson:"medicalFit"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
