package model

import "time"

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectClosed ProjectStatus = "closed"
)

// Project is a worksite to which every HSE record is scoped.
type Project struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Client    string        `json:"client" bson:"client"`
	Location  string        `json:"location" bson:"location"`
	Status    ProjectStatus `json:"status" bson:"status"`
	StartDate time.Time     `json:"startDate" bson:"startDate"`
	EndDate   *time.Time    `json:"endDate,omitempty" bson:"endDate,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
