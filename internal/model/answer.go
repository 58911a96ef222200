package model

// ArticleAnswer is the mutable per-submission judgment on one article.
// Invariants (enforced by regwatch.Apply):
//   - Applicable == false implies Compliant == false and both texts empty.
//   - Compliant == true implies CorrectiveAction == "".
type ArticleAnswer struct {
	ArticleID        string `json:"articleId" bson:"articleId"`
	ChapterID        string `json:"chapterId" bson:"chapterId"`
	Applicable       bool   `json:"applicable" bson:"applicable"`
	Compliant        bool   `json:"compliant" bson:"compliant"`
	CorrectiveAction string `json:"correctiveAction" bson:"correctiveAction"`
	Comment          string `json:"comment" bson:"comment"`
}

// SectionAnswer covers exactly the articles of the corresponding catalogue
// section, in catalogue order.
type SectionAnswer struct {
	SectionID string          `json:"sectionId" bson:"sectionId"`
	Articles  []ArticleAnswer `json:"articles" bson:"articles"`
}

// AnswerState is the root answer structure for one questionnaire submission.
type AnswerState struct {
	SchemaVersion string          `json:"schemaVersion" bson:"schemaVersion"`
	Sections      []SectionAnswer `json:"sections" bson:"sections"`
}

// ArticlePatch is a partial update to a single ArticleAnswer.
// Nil fields are left untouched.
type ArticlePatch struct {
	Applicable       *bool   `json:"applicable,omitempty"`
	Compliant        *bool   `json:"compliant,omitempty"`
	CorrectiveAction *string `json:"correctiveAction,omitempty"`
	Comment          *string `json:"comment,omitempty"`
}

// SectionScore is the derived compliance figure for one section.
// Score is nil when the section has no applicable article.
type SectionScore struct {
	SectionID       string   `json:"sectionId" bson:"sectionId"`
	TotalApplicable int      `json:"totalApplicable" bson:"totalApplicable"`
	TotalCompliant  int      `json:"totalCompliant" bson:"totalCompliant"`
	Score           *float64 `json:"score" bson:"score"`
}
