// Package regschema loads the immutable regulation catalogues and
// provides order-preserving traversal over them.
package regschema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"hsemanager/internal/model"
)

//go:embed data/labor.json
var laborJSON []byte

//go:embed data/environment.json
var environmentJSON []byte

var catalogues map[model.SchemaVariant]*model.Catalogue

func init() {
	catalogues = make(map[model.SchemaVariant]*model.Catalogue)
	for _, raw := range [][]byte{laborJSON, environmentJSON} {
		var c model.Catalogue
		if err := json.Unmarshal(raw, &c); err != nil {
			panic(fmt.Sprintf("regschema: bad embedded catalogue: %v", err))
		}
		catalogues[c.Variant] = &c
	}
}

// Get returns the catalogue for a variant, or nil if the variant is unknown.
func Get(variant model.SchemaVariant) *model.Catalogue {
	return catalogues[variant]
}

// Flatten produces the order-preserving flat article list of a catalogue:
// sections in catalogue order, chapters in section order, articles in
// chapter order. Calling it twice yields identical output.
func Flatten(c *model.Catalogue) []model.FlatArticle {
	var flat []model.FlatArticle
	for _, sec := range c.Sections {
		for _, ch := range sec.Chapters {
			for _, a := range ch.Articles {
				flat = append(flat, model.FlatArticle{
					SectionID: sec.ID,
					ChapterID: ch.ID,
					ArticleID: a.ID,
					Code:      a.Code,
					Text:      a.Text,
				})
			}
		}
	}
	return flat
}

// FindArticle looks up an article by id in a flattened catalogue.
// Returns nil when the id is unknown.
func FindArticle(flat []model.FlatArticle, articleID string) *model.FlatArticle {
	for i := range flat {
		if flat[i].ArticleID == articleID {
			return &flat[i]
		}
	}
	return nil
}

// FindSection looks up a section definition by id. Returns nil when the
// id is unknown.
func FindSection(c *model.Catalogue, sectionID string) *model.Section {
	for i := range c.Sections {
		if c.Sections[i].ID == sectionID {
			return &c.Sections[i]
		}
	}
	return nil
}
