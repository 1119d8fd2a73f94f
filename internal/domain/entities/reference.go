package entities

// EntityKind distinguishes the two reference databases names are resolved
// against.
type EntityKind string

const (
	EntityPerson  EntityKind = "person"
	EntityProject EntityKind = "project"
)

// ReferenceEntity is a known person or project record pulled from a remote
// database. Read-only within a run.
type ReferenceEntity struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Kind    EntityKind `json:"kind"`
	URL     string     `json:"url"`
	Aliases []string   `json:"aliases,omitempty"`
}

// Candidates returns the canonical name followed by all aliases, in the
// order they should be scored and scanned for mentions.
func (e ReferenceEntity) Candidates() []string {
	out := make([]string, 0, 1+len(e.Aliases))
	out = append(out, e.Name)
	out = append(out, e.Aliases...)
	return out
}

// LinkedMention pairs a raw name from an ExtractedMeeting with zero or one
// matched ReferenceEntity and the similarity score of that match.
type LinkedMention struct {
	RawName string           `json:"raw_name"`
	Entity  *ReferenceEntity `json:"entity,omitempty"`
	Score   float64          `json:"score"`
}

// Matched reports whether the raw name resolved to a reference entity.
func (m LinkedMention) Matched() bool {
	return m.Entity != nil
}
