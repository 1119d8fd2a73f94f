package resolve

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

// variation is one scannable phrasing of an entity name.
type variation struct {
	name string
	url  string
}

// Linker splits free text into rich text spans, turning mentions of known
// entities into links. Variations are scanned longest first so a longer
// phrasing wins over a name it contains.
type Linker struct {
	variations []variation
}

// NewLinker builds a linker over the given reference entities.
func NewLinker(refs []entities.ReferenceEntity) *Linker {
	var vars []variation
	for i := range refs {
		for _, candidate := range refs[i].Candidates() {
			if candidate == "" {
				continue
			}
			vars = append(vars, variation{
				name: candidate,
				url:  refs[i].URL,
			})
		}
	}
	sort.SliceStable(vars, func(i, j int) bool { return len(vars[i].name) > len(vars[j].name) })
	return &Linker{variations: vars}
}

// LinkText splits text into spans, linking the earliest case-insensitive
// mention of any entity variation and continuing over the remaining text.
// With no known entities the text comes back as a single plain span.
func (l *Linker) LinkText(text string) []notion.RichText {
	if text == "" {
		return nil
	}
	if len(l.variations) == 0 {
		return []notion.RichText{notion.NewText(text)}
	}

	var parts []notion.RichText
	remaining := text
	for remaining != "" {
		start, end, url := l.earliestMention(remaining)
		if start < 0 {
			parts = append(parts, notion.NewText(remaining))
			break
		}
		if start > 0 {
			parts = append(parts, notion.NewText(remaining[:start]))
		}
		parts = append(parts, notion.NewLinkedText(remaining[start:end], url))
		remaining = remaining[end:]
	}
	return parts
}

// LinkName renders a single raw name, linked when the mention resolved.
func LinkName(mention entities.LinkedMention) notion.RichText {
	if mention.Matched() {
		return notion.NewLinkedText(mention.RawName, mention.Entity.URL)
	}
	return notion.NewText(mention.RawName)
}

// earliestMention finds the leftmost case-insensitive occurrence of any
// variation in text, preferring the longest variation at equal positions.
// Matching folds rune by rune over the original string, never over a lowered
// copy, so the returned byte offsets always cut text on rune boundaries.
func (l *Linker) earliestMention(text string) (start, end int, url string) {
	start = -1
	for _, v := range l.variations {
		idx, length := foldIndex(text, v.name)
		if idx == -1 {
			continue
		}
		if start == -1 || idx < start {
			start = idx
			end = idx + length
			url = v.url
		}
	}
	return start, end, url
}

// foldIndex reports the byte offset and matched byte length of the first
// case-insensitive occurrence of sub in s, or -1 when absent.
func foldIndex(s, sub string) (int, int) {
	for i := range s {
		if n := foldPrefixLen(s[i:], sub); n >= 0 {
			return i, n
		}
	}
	return -1, 0
}

// foldPrefixLen returns the byte length of the prefix of s that matches sub
// under rune-wise case folding, or -1 when s does not start with sub.
func foldPrefixLen(s, sub string) int {
	n := 0
	for _, sr := range sub {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 {
			return -1
		}
		if unicode.ToLower(r) != unicode.ToLower(sr) {
			return -1
		}
		n += size
	}
	return n
}
