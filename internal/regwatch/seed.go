// Package regwatch implements the regulatory-watch questionnaire core:
// answer-state seeding, patch application and compliance scoring.
package regwatch

import (
	"hsemanager/internal/model"
)

// Seed builds a fresh answer-state for a catalogue. Articles whose id
// appears in previousNonApplicable are seeded not applicable (the
// carry-forward from the prior week); everything else starts applicable
// and compliant with blank texts. Ids unknown to the catalogue are
// silently ignored, which covers catalogue revisions between weeks.
func Seed(c *model.Catalogue, previousNonApplicable map[string]struct{}) model.AnswerState {
	state := model.AnswerState{
		SchemaVersion: c.SchemaVersion,
		Sections:      make([]model.SectionAnswer, 0, len(c.Sections)),
	}
	for _, sec := range c.Sections {
		sa := model.SectionAnswer{SectionID: sec.ID}
		for _, ch := range sec.Chapters {
			for _, a := range ch.Articles {
				_, notApplicable := previousNonApplicable[a.ID]
				answer := model.ArticleAnswer{
					ArticleID:  a.ID,
					ChapterID:  ch.ID,
					Applicable: !notApplicable,
					Compliant:  !notApplicable,
				}
				sa.Articles = append(sa.Articles, answer)
			}
		}
		state.Sections = append(state.Sections, sa)
	}
	return state
}
