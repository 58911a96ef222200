package regwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/model"
)

func section(id string, answers ...model.ArticleAnswer) model.SectionAnswer {
	return model.SectionAnswer{SectionID: id, Articles: answers}
}

func article(applicable, compliant bool) model.ArticleAnswer {
	return model.ArticleAnswer{Applicable: applicable, Compliant: compliant}
}

func TestScoreSectionNoApplicable(t *testing.T) {
	s := ScoreSection(section("S1", article(false, false), article(false, false)))

	assert.Equal(t, 0, s.TotalApplicable)
	assert.Equal(t, 0, s.TotalCompliant)
	assert.Nil(t, s.Score, "no applicable article means no score, not zero")
}

func TestScoreSectionPercentage(t *testing.T) {
	// 3 compliant out of 4 applicable -> 75.00
	s := ScoreSection(section("S1",
		article(true, true),
		article(true, true),
		article(true, true),
		article(true, false),
		article(false, false),
	))

	assert.Equal(t, 4, s.TotalApplicable)
	assert.Equal(t, 3, s.TotalCompliant)
	require.NotNil(t, s.Score)
	assert.Equal(t, 75.0, *s.Score)
}

func TestScoreSectionRounding(t *testing.T) {
	// 1/3 -> 33.333... -> 33.33 (two decimals, half away from zero)
	s := ScoreSection(section("S1",
		article(true, true),
		article(true, false),
		article(true, false),
	))
	require.NotNil(t, s.Score)
	assert.Equal(t, 33.33, *s.Score)

	// 2/3 -> 66.666... -> 66.67
	s = ScoreSection(section("S1",
		article(true, true),
		article(true, true),
		article(true, false),
	))
	require.NotNil(t, s.Score)
	assert.Equal(t, 66.67, *s.Score)
}

func TestOverallScoreSkipsNilSections(t *testing.T) {
	state := model.AnswerState{Sections: []model.SectionAnswer{
		// 100.0
		section("S1", article(true, true), article(true, true)),
		// 50.0
		section("S2", article(true, true), article(true, false)),
		// nil, must not drag the average down
		section("S3", article(false, false)),
	}}

	overall := OverallScore(state)
	require.NotNil(t, overall)
	assert.Equal(t, 75.0, *overall)
}

func TestOverallScoreAllNil(t *testing.T) {
	state := model.AnswerState{Sections: []model.SectionAnswer{
		section("S1", article(false, false)),
		section("S2"),
	}}

	assert.Nil(t, OverallScore(state))
}

func TestScoreSectionsOrder(t *testing.T) {
	state := model.AnswerState{Sections: []model.SectionAnswer{
		section("S1", article(true, true)),
		section("S2", article(true, false)),
	}}

	scores := ScoreSections(state)
	require.Len(t, scores, 2)
	assert.Equal(t, "S1", scores[0].SectionID)
	assert.Equal(t, "S2", scores[1].SectionID)
}
