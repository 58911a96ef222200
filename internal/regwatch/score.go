package regwatch

import (
	"math"

	"hsemanager/internal/model"
)

// round2 rounds to 2 decimal places, half away from zero (math.Round).
// Displayed compliance figures depend on this rule, so it is pinned here
// and covered by tests rather than left to formatting code.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ScoreSection computes the compliance figure of one section answer.
// Score is nil when the section has no applicable article.
func ScoreSection(sa model.SectionAnswer) model.SectionScore {
	score := model.SectionScore{SectionID: sa.SectionID}
	for _, a := range sa.Articles {
		if !a.Applicable {
			continue
		}
		score.TotalApplicable++
		if a.Compliant {
			score.TotalCompliant++
		}
	}
	if score.TotalApplicable > 0 {
		pct := round2(float64(score.TotalCompliant) / float64(score.TotalApplicable) * 100)
		score.Score = &pct
	}
	return score
}

// ScoreSections computes every section score in state order.
func ScoreSections(state model.AnswerState) []model.SectionScore {
	scores := make([]model.SectionScore, 0, len(state.Sections))
	for _, sa := range state.Sections {
		scores = append(scores, ScoreSection(sa))
	}
	return scores
}

// OverallScore is the arithmetic mean of the non-nil section scores,
// rounded like the section scores. Nil when every section is nil.
func OverallScore(state model.AnswerState) *float64 {
	sum := 0.0
	n := 0
	for _, sa := range state.Sections {
		if s := ScoreSection(sa); s.Score != nil {
			sum += *s.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := round2(sum / float64(n))
	return &avg
}
