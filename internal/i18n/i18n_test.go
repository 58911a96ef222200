package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hsemanager/internal/model"
)

func TestLocalize(t *testing.T) {
	both := model.LocalizedText{FR: "Casque obligatoire", EN: "Hard hat required"}
	frOnly := model.LocalizedText{FR: "Casque obligatoire"}
	empty := model.LocalizedText{}

	assert.Equal(t, "Hard hat required", Localize(both, English))
	assert.Equal(t, "Casque obligatoire", Localize(both, French))

	// English falls back to French when no translation exists
	assert.Equal(t, "Casque obligatoire", Localize(frOnly, English))

	// Nothing at all resolves to the empty string
	assert.Equal(t, "", Localize(empty, English))
	assert.Equal(t, "", Localize(empty, French))
}

func TestParse(t *testing.T) {
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, French, Parse("fr"))
	assert.Equal(t, French, Parse(""))
	assert.Equal(t, French, Parse("de"))
}
