package model

// SchemaVariant identifies one of the two independent regulation catalogues.
type SchemaVariant string

const (
	VariantLabor       SchemaVariant = "labor"
	VariantEnvironment SchemaVariant = "environment"
)

// Article is the smallest regulatory unit assessed for applicability/compliance.
type Article struct {
	ID   string        `json:"id" bson:"id"`
	Code LocalizedText `json:"code" bson:"code"`
	Text LocalizedText `json:"text" bson:"text"`
}

// Chapter groups articles within a section.
type Chapter struct {
	ID       string        `json:"id" bson:"id"`
	Title    LocalizedText `json:"title" bson:"title"`
	Articles []Article     `json:"articles" bson:"articles"`
}

// Section is a top-level grouping of chapters, scored independently.
type Section struct {
	ID       string        `json:"id" bson:"id"`
	Title    LocalizedText `json:"title" bson:"title"`
	Chapters []Chapter     `json:"chapters" bson:"chapters"`
}

// Catalogue is one immutable schema variant with its version tag.
// Answer-states produced under a different version must never be mixed in.
type Catalogue struct {
	Variant       SchemaVariant `json:"variant"`
	SchemaVersion string        `json:"schemaVersion"`
	Sections      []Section     `json:"sections"`
}

// FlatArticle is one row of the order-preserving flattened catalogue.
type FlatArticle struct {
	SectionID string        `json:"sectionId"`
	ChapterID string        `json:"chapterId"`
	ArticleID string        `json:"articleId"`
	Code      LocalizedText `json:"code"`
	Text      LocalizedText `json:"text"`
}
