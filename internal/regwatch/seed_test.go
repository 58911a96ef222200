package regwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/model"
	"hsemanager/internal/regschema"
)

func TestSeedCoversCatalogueInOrder(t *testing.T) {
	c := regschema.Get(model.VariantLabor)
	state := Seed(c, nil)

	assert.Equal(t, c.SchemaVersion, state.SchemaVersion)
	require.Len(t, state.Sections, len(c.Sections))

	flat := regschema.Flatten(c)
	i := 0
	for si, sec := range c.Sections {
		sa := state.Sections[si]
		assert.Equal(t, sec.ID, sa.SectionID)
		for _, a := range sa.Articles {
			require.Less(t, i, len(flat))
			assert.Equal(t, flat[i].ArticleID, a.ArticleID)
			assert.Equal(t, flat[i].ChapterID, a.ChapterID)
			assert.True(t, a.Applicable)
			assert.True(t, a.Compliant)
			assert.Empty(t, a.CorrectiveAction)
			assert.Empty(t, a.Comment)
			i++
		}
	}
	assert.Equal(t, len(flat), i, "seed must cover every catalogue article exactly once")
}

func TestSeedCarryForward(t *testing.T) {
	c := regschema.Get(model.VariantLabor)
	state := Seed(c, map[string]struct{}{"281": {}})

	for _, sa := range state.Sections {
		for _, a := range sa.Articles {
			if a.ArticleID == "281" {
				assert.False(t, a.Applicable)
				assert.False(t, a.Compliant)
			} else {
				assert.True(t, a.Applicable, "article %s", a.ArticleID)
			}
		}
	}
}

func TestSeedIgnoresUnknownCarryForwardIDs(t *testing.T) {
	c := regschema.Get(model.VariantLabor)

	// "9999" was never in the catalogue (or was removed by a revision)
	state := Seed(c, map[string]struct{}{"9999": {}})

	for _, sa := range state.Sections {
		for _, a := range sa.Articles {
			assert.True(t, a.Applicable)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	c := regschema.Get(model.VariantEnvironment)
	prev := map[string]struct{}{"E103": {}, "E303": {}}

	assert.Equal(t, Seed(c, prev), Seed(c, prev))
}
