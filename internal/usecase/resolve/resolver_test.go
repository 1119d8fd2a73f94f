package resolve

import (
	"testing"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func refSet(names ...string) []entities.ReferenceEntity {
	refs := make([]entities.ReferenceEntity, 0, len(names))
	for i, name := range names {
		refs = append(refs, entities.ReferenceEntity{
			ID:   name,
			Name: name,
			Kind: entities.EntityPerson,
			URL:  "https://www.notion.so/page" + string(rune('a'+i)),
		})
	}
	return refs
}

func TestResolve_ExactMatch(t *testing.T) {
	r := NewResolver(refSet("John Smith", "Sarah Chen"))
	m := r.Resolve("Sarah Chen")
	if !m.Matched() {
		t.Fatal("exact name should match")
	}
	if m.Entity.Name != "Sarah Chen" {
		t.Fatalf("matched wrong entity %s", m.Entity.Name)
	}
	if m.Score != 1 {
		t.Fatalf("exact match should score 1, got %f", m.Score)
	}
}

func TestResolve_SubstringScoresMaximal(t *testing.T) {
	// A name contained in the candidate, or containing it, counts as a full
	// match regardless of the length difference.
	r := NewResolver(refSet("Steve Keen"))
	m := r.Resolve("Steve Keen project")
	if !m.Matched() {
		t.Fatal("containing phrase should match")
	}
	if m.Score != 1 {
		t.Fatalf("containment should score 1, got %f", m.Score)
	}

	m = r.Resolve("Steve")
	if !m.Matched() {
		t.Fatal("contained prefix should match")
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := NewResolver(refSet("Sarah Chen"))
	if !r.Resolve("sarah chen").Matched() {
		t.Fatal("case should not affect matching")
	}
	if !r.Resolve("SARAH CHEN").Matched() {
		t.Fatal("case should not affect matching")
	}
}

func TestResolve_NearMiss(t *testing.T) {
	r := NewResolver(refSet("Sarah Chen"))
	// One typo in a short name stays above the threshold.
	if !r.Resolve("Sara Chen").Matched() {
		t.Fatal("single-character slip should match")
	}
	// A different person does not.
	if r.Resolve("David Park").Matched() {
		t.Fatal("unrelated name should not match")
	}
}

func TestResolve_BelowThreshold(t *testing.T) {
	r := NewResolverWithThreshold(refSet("Sarah Chen"), 0.95)
	if r.Resolve("Sara Chen").Matched() {
		t.Fatal("raised threshold should reject the near miss")
	}
}

func TestResolve_EmptyInputs(t *testing.T) {
	r := NewResolver(refSet("Sarah Chen"))
	if r.Resolve("").Matched() {
		t.Fatal("empty name should not match")
	}
	if r.Resolve("   ").Matched() {
		t.Fatal("blank name should not match")
	}

	empty := NewResolver(nil)
	m := empty.Resolve("Sarah Chen")
	if m.Matched() {
		t.Fatal("empty reference set should not match")
	}
	if m.RawName != "Sarah Chen" {
		t.Fatalf("raw name should pass through, got %q", m.RawName)
	}
}

func TestResolve_TieKeepsFirst(t *testing.T) {
	// Two entities scoring identically resolve to the earlier one, every time.
	refs := []entities.ReferenceEntity{
		{ID: "1", Name: "Alex", Kind: entities.EntityPerson},
		{ID: "2", Name: "Alex", Kind: entities.EntityPerson},
	}
	r := NewResolver(refs)
	for i := 0; i < 20; i++ {
		m := r.Resolve("Alex")
		if m.Entity == nil || m.Entity.ID != "1" {
			t.Fatalf("tie should keep the first entity, got %+v", m.Entity)
		}
	}
}

func TestResolve_AliasMatches(t *testing.T) {
	refs := []entities.ReferenceEntity{{
		ID:      "1",
		Name:    "Apollo",
		Kind:    entities.EntityProject,
		Aliases: []string{"Apollo project", "the Apollo project"},
	}}
	m := NewResolver(refs).Resolve("the Apollo project")
	if !m.Matched() {
		t.Fatal("alias should match")
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"abc", "abc", 1},
		{"Steve Keen", "Steve Keen project", 1},
		{"", "abc", 0},
		{"abc", "", 0},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got != c.want {
			t.Fatalf("Similarity(%q, %q) = %f, want %f", c.a, c.b, got, c.want)
		}
	}

	// Symmetric for non-containment pairs too.
	if Similarity("kitten", "sitting") != Similarity("sitting", "kitten") {
		t.Fatal("similarity should be symmetric")
	}
	if s := Similarity("kitten", "sitting"); s <= 0 || s >= 1 {
		t.Fatalf("expected a fractional score, got %f", s)
	}
}
