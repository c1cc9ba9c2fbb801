package explain

import "time"

// DefaultCategory is the taxonomy bucket assigned to every new explanation.
// Reserved for a future category system.
const DefaultCategory = "General"

// MaxRelatedConcepts caps the related-concepts list parsed from a response.
const MaxRelatedConcepts = 5

// Sections is the structured body of an explanation, one field per
// mandated response section.
type Sections struct {
	Simple          string   `json:"simple"`
	Analogy         string   `json:"analogy"`
	Example         string   `json:"example"`
	WhyItMatters    string   `json:"whyItMatters"`
	RelatedConcepts []string `json:"relatedConcepts"`
}

// Explanation is a single explained concept. Immutable after creation
// except for the Saved flag, which flips to true when the record enters
// the library.
type Explanation struct {
	ID           string    `json:"id"`
	Concept      string    `json:"concept"`
	FullQuestion string    `json:"fullQuestion,omitempty"`
	Level        Level     `json:"level"`
	Timestamp    time.Time `json:"timestamp"`
	Body         Sections  `json:"explanation"`
	Category     string    `json:"category"`
	Saved        bool      `json:"saved"`
}
