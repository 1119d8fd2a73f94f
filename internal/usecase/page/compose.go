package page

import (
	"strings"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

const (
	// chunkRunes is the Notion limit on a single rich text span.
	chunkRunes = 2000
	// maxChunks caps how many spans one property update may carry.
	maxChunks = 100
	// maxBodyRunes is the largest combined body this writer accepts.
	maxBodyRunes = chunkRunes * maxChunks
)

var separatorBanner = "\n\n" + strings.Repeat("=", 50) + "\n# AI-Processed Meeting Summary\n" + strings.Repeat("=", 50) + "\n\n"

// RenderActionItem formats one action item as a bullet line. Assignee and due
// date are appended in that order and omitted when absent.
func RenderActionItem(item entities.ActionItem) string {
	var b strings.Builder
	b.WriteString("• ")
	b.WriteString(item.Task)
	if item.Assignee != "" {
		b.WriteString(" (Assigned to: ")
		b.WriteString(item.Assignee)
		b.WriteString(")")
	}
	if item.DueDate != "" {
		b.WriteString(" (Due: ")
		b.WriteString(item.DueDate)
		b.WriteString(")")
	}
	return b.String()
}

// ComposeSection renders the extracted meeting and the verbatim transcript as
// the markdown body appended to the page. Empty sections are left out.
func ComposeSection(m *entities.ExtractedMeeting, transcript string) string {
	var parts []string

	if len(m.Attendees) > 0 {
		parts = append(parts, "**Attendees:** "+strings.Join(m.Attendees, ", "))
	}
	if m.Summary != "" {
		parts = append(parts, "## Summary\n"+m.Summary)
	}
	if len(m.KeyDecisions) > 0 {
		lines := make([]string, 0, len(m.KeyDecisions))
		for _, d := range m.KeyDecisions {
			lines = append(lines, "• "+d)
		}
		parts = append(parts, "## Key Decisions\n"+strings.Join(lines, "\n"))
	}
	if len(m.ActionItems) > 0 {
		lines := make([]string, 0, len(m.ActionItems))
		for _, item := range m.ActionItems {
			lines = append(lines, RenderActionItem(item))
		}
		parts = append(parts, "## Action Items\n"+strings.Join(lines, "\n"))
	}
	if len(m.NextSteps) > 0 {
		lines := make([]string, 0, len(m.NextSteps))
		for _, s := range m.NextSteps {
			lines = append(lines, "• "+s)
		}
		parts = append(parts, "## Next Steps\n"+strings.Join(lines, "\n"))
	}
	if transcript != "" {
		parts = append(parts, "## Original Transcript\n--- BEGIN TRANSCRIPT ---\n"+transcript+"\n--- END TRANSCRIPT ---")
	}

	return strings.Join(parts, "\n\n")
}

// Append pairs the page's current body with the new section. The separator
// banner always precedes the section, even over an empty body, so repeated
// runs stack and the prior content stays byte for byte intact.
func Append(existing, section string) entities.PageContent {
	return entities.PageContent{
		Existing: existing,
		Appended: separatorBanner + section,
	}
}

// Chunks splits a body into rich text spans of at most 2000 characters. A
// body that would need more than 100 spans is rejected before anything is
// written.
func Chunks(body string) ([]notion.RichText, error) {
	runes := []rune(body)
	if len(runes) > maxBodyRunes {
		return nil, apperrors.ErrContentTooLarge(len(runes), maxBodyRunes)
	}

	if len(runes) == 0 {
		return []notion.RichText{notion.NewText("")}, nil
	}

	spans := make([]notion.RichText, 0, (len(runes)+chunkRunes-1)/chunkRunes)
	for start := 0; start < len(runes); start += chunkRunes {
		end := start + chunkRunes
		if end > len(runes) {
			end = len(runes)
		}
		spans = append(spans, notion.NewText(string(runes[start:end])))
	}
	return spans, nil
}
