package regwatch

import (
	"fmt"

	"hsemanager/internal/model"
)

// Apply produces a new answer-state with the patch applied to the article
// at (sectionIdx, articleIdx). The input state is never mutated; sections
// other than the patched one are shared with the input. Out-of-bounds
// indexes return an error rather than touching unrelated data.
//
// Cross-field invariants, enforced after the patch in this order:
//  1. applicable set to false forces compliant=false and clears both texts;
//  2. applicable transitioning false -> true forces compliant=true;
//  3. compliant set to true clears the corrective action.
func Apply(state model.AnswerState, sectionIdx, articleIdx int, patch model.ArticlePatch) (model.AnswerState, error) {
	if sectionIdx < 0 || sectionIdx >= len(state.Sections) {
		return model.AnswerState{}, fmt.Errorf("section index %d out of range (%d sections)", sectionIdx, len(state.Sections))
	}
	section := state.Sections[sectionIdx]
	if articleIdx < 0 || articleIdx >= len(section.Articles) {
		return model.AnswerState{}, fmt.Errorf("article index %d out of range in section %s (%d articles)", articleIdx, section.SectionID, len(section.Articles))
	}

	answer := section.Articles[articleIdx]
	wasApplicable := answer.Applicable

	if patch.Applicable != nil {
		answer.Applicable = *patch.Applicable
	}
	if patch.Compliant != nil {
		answer.Compliant = *patch.Compliant
	}
	if patch.CorrectiveAction != nil {
		answer.CorrectiveAction = *patch.CorrectiveAction
	}
	if patch.Comment != nil {
		answer.Comment = *patch.Comment
	}

	if patch.Applicable != nil && !*patch.Applicable {
		answer.Compliant = false
		answer.CorrectiveAction = ""
		answer.Comment = ""
	}
	if patch.Applicable != nil && *patch.Applicable && !wasApplicable {
		answer.Compliant = true
	}
	if patch.Compliant != nil && *patch.Compliant {
		answer.CorrectiveAction = ""
	}

	articles := make([]model.ArticleAnswer, len(section.Articles))
	copy(articles, section.Articles)
	articles[articleIdx] = answer

	sections := make([]model.SectionAnswer, len(state.Sections))
	copy(sections, state.Sections)
	sections[sectionIdx] = model.SectionAnswer{SectionID: section.SectionID, Articles: articles}

	return model.AnswerState{SchemaVersion: state.SchemaVersion, Sections: sections}, nil
}
