package page

import (
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

type fakeResolver struct {
	known map[string]string
}

func (f *fakeResolver) Resolve(rawName string) entities.LinkedMention {
	m := entities.LinkedMention{RawName: rawName}
	if url, ok := f.known[rawName]; ok {
		m.Entity = &entities.ReferenceEntity{Name: rawName, URL: url}
		m.Score = 1
	}
	return m
}

type passthroughLinker struct{}

func (passthroughLinker) LinkText(text string) []notion.RichText {
	return []notion.RichText{notion.NewText(text)}
}

func headings(blocks []notion.Block) []string {
	var hs []string
	for _, b := range blocks {
		switch b.Type {
		case "heading_1":
			hs = append(hs, notion.PlainText(b.Heading1.RichText))
		case "heading_2":
			hs = append(hs, notion.PlainText(b.Heading2.RichText))
		}
	}
	return hs
}

func TestBuildBlocks_Structure(t *testing.T) {
	blocks := BuildBlocks(sampleMeeting(), "transcript text", nil, nil)

	if blocks[0].Type != "divider" {
		t.Fatalf("first block should be a divider, got %s", blocks[0].Type)
	}
	want := []string{"AI-Processed Meeting Summary", "Summary", "Key Decisions", "Action Items", "Next Steps", "Original Transcript"}
	got := headings(blocks)
	if len(got) != len(want) {
		t.Fatalf("unexpected headings %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildBlocks_EmptySectionsOmitted(t *testing.T) {
	m := &entities.ExtractedMeeting{Summary: "Short sync."}
	blocks := BuildBlocks(m, "", nil, nil)
	got := headings(blocks)
	if len(got) != 2 || got[0] != "AI-Processed Meeting Summary" || got[1] != "Summary" {
		t.Fatalf("unexpected headings %v", got)
	}
}

func TestBuildBlocks_AttendeesLinked(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"Sarah": "https://www.notion.so/sarah"}}
	blocks := BuildBlocks(sampleMeeting(), "", resolver, passthroughLinker{})

	var attendees *notion.Block
	for i := range blocks {
		if blocks[i].Type == "paragraph" && strings.Contains(notion.PlainText(blocks[i].Paragraph.RichText), "Attendees") {
			attendees = &blocks[i]
			break
		}
	}
	if attendees == nil {
		t.Fatal("attendees paragraph missing")
	}

	var sarahLinked, johnPlain bool
	for _, rt := range attendees.Paragraph.RichText {
		if rt.Text.Content == "Sarah" && rt.Text.Link != nil {
			sarahLinked = true
		}
		if rt.Text.Content == "John" && rt.Text.Link == nil {
			johnPlain = true
		}
	}
	if !sarahLinked {
		t.Fatal("known attendee should be linked")
	}
	if !johnPlain {
		t.Fatal("unknown attendee stays plain text")
	}
}

func TestBuildBlocks_ActionItemAssigneeLinked(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"Sarah": "https://www.notion.so/sarah"}}
	blocks := BuildBlocks(sampleMeeting(), "", resolver, passthroughLinker{})

	var bullet *notion.Block
	for i := range blocks {
		if blocks[i].Type == "bulleted_list_item" && strings.Contains(notion.PlainText(blocks[i].BulletedListItem.RichText), "Assigned to") {
			bullet = &blocks[i]
			break
		}
	}
	if bullet == nil {
		t.Fatal("action item bullet missing")
	}

	text := notion.PlainText(bullet.BulletedListItem.RichText)
	if !strings.Contains(text, "(Assigned to: Sarah) (Due: 2026-09-05)") {
		t.Fatalf("unexpected rendering %q", text)
	}
	var assigneeLinked bool
	for _, rt := range bullet.BulletedListItem.RichText {
		if rt.Text.Content == "Sarah" && rt.Text.Link != nil {
			assigneeLinked = true
		}
	}
	if !assigneeLinked {
		t.Fatal("assignee should be linked")
	}
}

func TestBuildBlocks_LongTextChunked(t *testing.T) {
	m := &entities.ExtractedMeeting{Summary: strings.Repeat("s", 4500)}
	blocks := BuildBlocks(m, strings.Repeat("t", 2500), nil, nil)

	var summaryParas, transcriptParas int
	seenTranscript := false
	for _, b := range blocks {
		if b.Type == "heading_2" && notion.PlainText(b.Heading2.RichText) == "Original Transcript" {
			seenTranscript = true
			continue
		}
		if b.Type != "paragraph" {
			continue
		}
		if seenTranscript {
			transcriptParas++
		} else {
			summaryParas++
		}
	}
	if summaryParas != 3 {
		t.Fatalf("expected 3 summary paragraphs got %d", summaryParas)
	}
	if transcriptParas != 2 {
		t.Fatalf("expected 2 transcript paragraphs got %d", transcriptParas)
	}
}
