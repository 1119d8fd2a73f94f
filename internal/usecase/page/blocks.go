package page

import (
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

// NameResolver matches a raw name against the reference entities.
type NameResolver interface {
	Resolve(rawName string) entities.LinkedMention
}

// TextLinker splits free text into spans with entity mentions linked.
type TextLinker interface {
	LinkText(text string) []notion.RichText
}

// BuildBlocks renders the extracted meeting as Notion content blocks, with
// attendee names and in-text entity mentions linked to their pages. Both
// resolver and linker may be nil, in which case everything renders as plain
// text.
func BuildBlocks(m *entities.ExtractedMeeting, transcript string, resolver NameResolver, linker TextLinker) []notion.Block {
	blocks := []notion.Block{
		notion.DividerBlock(),
		notion.Heading1Block("AI-Processed Meeting Summary"),
	}

	if len(m.Attendees) > 0 {
		rt := []notion.RichText{notion.NewText("**Attendees:** ")}
		for i, name := range m.Attendees {
			if i > 0 {
				rt = append(rt, notion.NewText(", "))
			}
			rt = append(rt, resolveName(resolver, name))
		}
		blocks = append(blocks, notion.ParagraphBlock(rt))
	}

	if m.Summary != "" {
		blocks = append(blocks, notion.Heading2Block("Summary"))
		blocks = append(blocks, chunkedParagraphs(m.Summary, linker)...)
	}

	if len(m.KeyDecisions) > 0 {
		blocks = append(blocks, notion.Heading2Block("Key Decisions"))
		for _, decision := range m.KeyDecisions {
			blocks = append(blocks, notion.BulletBlock(linkText(linker, decision)))
		}
	}

	if len(m.ActionItems) > 0 {
		blocks = append(blocks, notion.Heading2Block("Action Items"))
		for _, item := range m.ActionItems {
			blocks = append(blocks, notion.BulletBlock(actionItemSpans(item, resolver, linker)))
		}
	}

	if len(m.NextSteps) > 0 {
		blocks = append(blocks, notion.Heading2Block("Next Steps"))
		for _, step := range m.NextSteps {
			blocks = append(blocks, notion.BulletBlock(linkText(linker, step)))
		}
	}

	if transcript != "" {
		blocks = append(blocks, notion.Heading2Block("Original Transcript"))
		blocks = append(blocks, chunkedParagraphs(transcript, nil)...)
	}

	return blocks
}

// actionItemSpans renders one action item, linking the task text and the
// assignee name independently.
func actionItemSpans(item entities.ActionItem, resolver NameResolver, linker TextLinker) []notion.RichText {
	rt := linkText(linker, item.Task)
	if item.Assignee != "" {
		rt = append(rt, notion.NewText(" (Assigned to: "))
		rt = append(rt, resolveName(resolver, item.Assignee))
		rt = append(rt, notion.NewText(")"))
	}
	if item.DueDate != "" {
		rt = append(rt, notion.NewText(" (Due: "+item.DueDate+")"))
	}
	return rt
}

// chunkedParagraphs splits long text into paragraph blocks that stay under
// the per-span character limit, linking each chunk when a linker is given.
func chunkedParagraphs(text string, linker TextLinker) []notion.Block {
	runes := []rune(text)
	var blocks []notion.Block
	for start := 0; start < len(runes); start += chunkRunes {
		end := start + chunkRunes
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[start:end])
		blocks = append(blocks, notion.ParagraphBlock(linkText(linker, chunk)))
	}
	return blocks
}

func resolveName(resolver NameResolver, name string) notion.RichText {
	if resolver == nil {
		return notion.NewText(name)
	}
	mention := resolver.Resolve(name)
	if mention.Matched() {
		return notion.NewLinkedText(name, mention.Entity.URL)
	}
	return notion.NewText(name)
}

func linkText(linker TextLinker, text string) []notion.RichText {
	if linker == nil || strings.TrimSpace(text) == "" {
		return []notion.RichText{notion.NewText(text)}
	}
	return linker.LinkText(text)
}
