package notion

import (
	"sort"
	"strings"
)

// Link is a hyperlink attached to a text span.
type Link struct {
	URL string `json:"url"`
}

// TextSpan is the text payload of a rich text object.
type TextSpan struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichText is one element of a Notion rich text array.
type RichText struct {
	Type      string    `json:"type,omitempty"`
	Text      *TextSpan `json:"text,omitempty"`
	PlainText string    `json:"plain_text,omitempty"`
}

// NewText creates a plain rich text element.
func NewText(content string) RichText {
	return RichText{Type: "text", Text: &TextSpan{Content: content}}
}

// NewLinkedText creates a rich text element whose content links to url.
func NewLinkedText(content, url string) RichText {
	return RichText{Type: "text", Text: &TextSpan{Content: content, Link: &Link{URL: url}}}
}

// PlainText concatenates the text content of a rich text array.
func PlainText(rt []RichText) string {
	var b strings.Builder
	for _, t := range rt {
		if t.Text != nil && t.Text.Content != "" {
			b.WriteString(t.Text.Content)
		} else if t.PlainText != "" {
			b.WriteString(t.PlainText)
		}
	}
	return b.String()
}

// Property is a page property value.
type Property struct {
	Type     string     `json:"type,omitempty"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
}

// Page is a Notion page with its property values.
type Page struct {
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Properties map[string]Property `json:"properties"`
}

// Title returns the plain text of the first matching title property, trying
// the given property names in order.
func (p *Page) Title(names ...string) (string, bool) {
	for _, name := range names {
		prop, ok := p.Properties[name]
		if !ok || len(prop.Title) == 0 {
			continue
		}
		if s := PlainText(prop.Title); s != "" {
			return s, true
		}
	}
	return "", false
}

// FirstRichTextProperty returns the name and value of the page's first
// rich_text property. Property names are scanned in sorted order so the
// choice is stable across runs.
func (p *Page) FirstRichTextProperty() (string, Property, bool) {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if prop := p.Properties[name]; prop.Type == "rich_text" {
			return name, prop, true
		}
	}
	return "", Property{}, false
}

// SelectOption is one choice of a select property.
type SelectOption struct {
	Name string `json:"name"`
}

// SelectSchema lists the options of a select property.
type SelectSchema struct {
	Options []SelectOption `json:"options"`
}

// PropertySchema is a property definition in a database schema.
type PropertySchema struct {
	Type   string        `json:"type"`
	Select *SelectSchema `json:"select,omitempty"`
}

// Database is a Notion database schema.
type Database struct {
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title,omitempty"`
	Properties map[string]PropertySchema `json:"properties"`
}

// SelectOptions returns the option names of the named select property.
func (d *Database) SelectOptions(property string) []string {
	prop, ok := d.Properties[property]
	if !ok || prop.Type != "select" || prop.Select == nil {
		return nil
	}
	names := make([]string, 0, len(prop.Select.Options))
	for _, opt := range prop.Select.Options {
		names = append(names, opt.Name)
	}
	return names
}

// Divider is an empty divider payload.
type Divider struct{}

// TextBlock is the payload shared by headings, paragraphs and list items.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// Block is a Notion content block. Exactly one payload field is set,
// matching Type.
type Block struct {
	Object           string     `json:"object"`
	Type             string     `json:"type"`
	Divider          *Divider   `json:"divider,omitempty"`
	Heading1         *TextBlock `json:"heading_1,omitempty"`
	Heading2         *TextBlock `json:"heading_2,omitempty"`
	Paragraph        *TextBlock `json:"paragraph,omitempty"`
	BulletedListItem *TextBlock `json:"bulleted_list_item,omitempty"`
}

// DividerBlock creates a divider block.
func DividerBlock() Block {
	return Block{Object: "block", Type: "divider", Divider: &Divider{}}
}

// Heading1Block creates a heading_1 block with plain text.
func Heading1Block(text string) Block {
	return Block{Object: "block", Type: "heading_1", Heading1: &TextBlock{RichText: []RichText{NewText(text)}}}
}

// Heading2Block creates a heading_2 block with plain text.
func Heading2Block(text string) Block {
	return Block{Object: "block", Type: "heading_2", Heading2: &TextBlock{RichText: []RichText{NewText(text)}}}
}

// ParagraphBlock creates a paragraph block.
func ParagraphBlock(rt []RichText) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: &TextBlock{RichText: rt}}
}

// BulletBlock creates a bulleted_list_item block.
func BulletBlock(rt []RichText) Block {
	return Block{Object: "block", Type: "bulleted_list_item", BulletedListItem: &TextBlock{RichText: rt}}
}
