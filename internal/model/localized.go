package model

// LocalizedText holds the bilingual form of a display string.
// French is the reference language of the regulation catalogue;
// the English translation may be missing on older entries.
type LocalizedText struct {
	FR string `json:"fr" bson:"fr"`
	EN string `json:"en,omitempty" bson:"en,omitempty"`
}
