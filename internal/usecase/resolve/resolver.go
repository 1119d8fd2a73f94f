package resolve

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// DefaultThreshold is the minimum similarity score a reference entity must
// reach to count as a match.
const DefaultThreshold = 0.8

// Resolver matches raw name strings against a fixed reference set. It has no
// side effects and is deterministic for a given reference order.
type Resolver struct {
	refs      []entities.ReferenceEntity
	threshold float64
}

// NewResolver creates a resolver over the given reference set with the
// default threshold.
func NewResolver(refs []entities.ReferenceEntity) *Resolver {
	return NewResolverWithThreshold(refs, DefaultThreshold)
}

// NewResolverWithThreshold creates a resolver with a custom threshold.
func NewResolverWithThreshold(refs []entities.ReferenceEntity, threshold float64) *Resolver {
	return &Resolver{refs: refs, threshold: threshold}
}

// Resolve finds the best-scoring reference entity for a raw name. Ties keep
// the earliest entity in reference order; a score below the threshold, an
// empty name or an empty reference set all yield an unmatched mention.
func (r *Resolver) Resolve(rawName string) entities.LinkedMention {
	mention := entities.LinkedMention{RawName: rawName}
	if strings.TrimSpace(rawName) == "" || len(r.refs) == 0 {
		return mention
	}

	bestIdx := -1
	bestScore := 0.0
	for i, ref := range r.refs {
		score := entityScore(rawName, ref)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore >= r.threshold {
		mention.Entity = &r.refs[bestIdx]
		mention.Score = bestScore
	}
	return mention
}

// entityScore is the best similarity between a raw name and any of the
// entity's name candidates.
func entityScore(rawName string, ref entities.ReferenceEntity) float64 {
	best := 0.0
	for _, candidate := range ref.Candidates() {
		if s := Similarity(rawName, candidate); s > best {
			best = s
		}
	}
	return best
}

// Similarity scores two names in [0, 1], case-insensitive. A substring
// containment in either direction is maximal; otherwise the score is
// normalized Levenshtein similarity. Identical names always score 1.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1
	}

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
