package model

import "time"

// SubmissionMode distinguishes a fresh weekly questionnaire from a
// correction of an already submitted one.
type SubmissionMode string

const (
	ModeNew      SubmissionMode = "new"
	ModeResubmit SubmissionMode = "resubmit"
)

// Submission is a finalized regulatory-watch questionnaire for one
// project and one ISO week.
type Submission struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	ProjectID     string         `json:"projectId" bson:"projectId"`
	WeekYear      int            `json:"weekYear" bson:"weekYear"`
	WeekNumber    int            `json:"weekNumber" bson:"weekNumber"`
	SchemaVersion string         `json:"schemaVersion" bson:"schemaVersion"`
	Answers       AnswerState    `json:"answers" bson:"answers"`
	Scores        []SectionScore `json:"scores" bson:"scores"`
	OverallScore  *float64       `json:"overallScore" bson:"overallScore"`
	SubmittedBy   string         `json:"submittedBy" bson:"submittedBy"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}

// NonApplicableArticleIDs collects the article ids marked not applicable,
// used to carry that determination forward into the next week's seed.
func (s *Submission) NonApplicableArticleIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, sec := range s.Answers.Sections {
		for _, a := range sec.Articles {
			if !a.Applicable {
				ids[a.ArticleID] = struct{}{}
			}
		}
	}
	return ids
}
