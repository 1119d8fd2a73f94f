package resolve

import (
	"testing"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

func linkerRefs() []entities.ReferenceEntity {
	return []entities.ReferenceEntity{
		{
			ID:      "p1",
			Name:    "Sarah",
			Kind:    entities.EntityPerson,
			URL:     "https://www.notion.so/sarah",
			Aliases: []string{"Sarah project"},
		},
		{
			ID:      "pr1",
			Name:    "Apollo",
			Kind:    entities.EntityProject,
			URL:     "https://www.notion.so/apollo",
			Aliases: []string{"Apollo project", "the Apollo project"},
		},
	}
}

func TestLinkText_SingleMention(t *testing.T) {
	l := NewLinker(linkerRefs())
	spans := l.LinkText("Sarah will handle the rollout.")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans got %d: %+v", len(spans), spans)
	}
	if spans[0].Text.Content != "Sarah" || spans[0].Text.Link == nil {
		t.Fatalf("first span should be the linked mention: %+v", spans[0])
	}
	if spans[0].Text.Link.URL != "https://www.notion.so/sarah" {
		t.Fatalf("unexpected link %s", spans[0].Text.Link.URL)
	}
	if spans[1].Text.Content != " will handle the rollout." || spans[1].Text.Link != nil {
		t.Fatalf("trailing span should be plain: %+v", spans[1])
	}
}

func TestLinkText_LongestVariationWins(t *testing.T) {
	l := NewLinker(linkerRefs())
	// "the Apollo project" covers "Apollo"; the longer variation takes the
	// whole phrase.
	spans := l.LinkText("Scope for the Apollo project is frozen.")
	var linked []string
	for _, s := range spans {
		if s.Text.Link != nil {
			linked = append(linked, s.Text.Content)
		}
	}
	if len(linked) != 1 || linked[0] != "the Apollo project" {
		t.Fatalf("expected one linked phrase, got %v", linked)
	}
}

func TestLinkText_PreservesCasing(t *testing.T) {
	l := NewLinker(linkerRefs())
	spans := l.LinkText("SARAH said yes.")
	if spans[0].Text.Content != "SARAH" {
		t.Fatalf("original casing should be kept, got %q", spans[0].Text.Content)
	}
	if spans[0].Text.Link == nil {
		t.Fatal("upper-case mention should still link")
	}
}

func TestLinkText_MultipleMentions(t *testing.T) {
	l := NewLinker(linkerRefs())
	spans := l.LinkText("Sarah syncs with Sarah weekly.")
	var linked int
	for _, s := range spans {
		if s.Text.Link != nil {
			linked++
		}
	}
	if linked != 2 {
		t.Fatalf("expected both mentions linked, got %d in %+v", linked, spans)
	}

	// Concatenated content reproduces the input exactly.
	if got := notion.PlainText(spans); got != "Sarah syncs with Sarah weekly." {
		t.Fatalf("spans should reassemble the input, got %q", got)
	}
}

func TestLinkText_MultiByteCharacterBeforeMention(t *testing.T) {
	// Lowercasing can change byte lengths ("İ" is two bytes, its lower form
	// three), so offsets must come from the original string, not a lowered
	// copy.
	l := NewLinker([]entities.ReferenceEntity{{
		ID:   "p1",
		Name: "Alex",
		Kind: entities.EntityPerson,
		URL:  "https://www.notion.so/alex",
	}})

	text := "İstanbul trip: Alex books flights"
	spans := l.LinkText(text)

	var linked []string
	for _, s := range spans {
		if s.Text.Link != nil {
			linked = append(linked, s.Text.Content)
		}
	}
	if len(linked) != 1 || linked[0] != "Alex" {
		t.Fatalf("linked spans = %v, want exactly [Alex]", linked)
	}
	if got := notion.PlainText(spans); got != text {
		t.Fatalf("spans should reassemble the input, got %q", got)
	}
	for _, s := range spans {
		if !utf8.ValidString(s.Text.Content) {
			t.Fatalf("span %q is not valid UTF-8", s.Text.Content)
		}
	}
}

func TestLinkText_NoEntities(t *testing.T) {
	l := NewLinker(nil)
	spans := l.LinkText("Nothing to link here.")
	if len(spans) != 1 || spans[0].Text.Link != nil {
		t.Fatalf("expected one plain span, got %+v", spans)
	}

	if got := NewLinker(linkerRefs()).LinkText(""); got != nil {
		t.Fatalf("empty text should yield no spans, got %+v", got)
	}
}

func TestLinkName(t *testing.T) {
	matched := entities.LinkedMention{
		RawName: "Sarah",
		Entity:  &entities.ReferenceEntity{URL: "https://www.notion.so/sarah"},
		Score:   1,
	}
	rt := LinkName(matched)
	if rt.Text.Link == nil || rt.Text.Link.URL != "https://www.notion.so/sarah" {
		t.Fatalf("matched mention should link: %+v", rt)
	}

	rt = LinkName(entities.LinkedMention{RawName: "Unknown"})
	if rt.Text.Link != nil {
		t.Fatalf("unmatched mention should stay plain: %+v", rt)
	}
	if rt.Text.Content != "Unknown" {
		t.Fatalf("raw name should pass through, got %q", rt.Text.Content)
	}
}
