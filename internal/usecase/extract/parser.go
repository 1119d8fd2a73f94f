package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Parser handles parsing and validation of LLM responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the LLM reply into an ExtractedMeeting. The reply is handled
// tolerantly: markdown code fences are stripped, the outermost JSON object is
// located, and each section is decoded independently. Sections that are
// absent or undecodable degrade to their zero value and are reported in
// Missing; a reply with no decodable JSON object fails.
func (p *Parser) Parse(content string) (*entities.ExtractedMeeting, error) {
	raw := locateObject(extractJSON(content))
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	meeting := &entities.ExtractedMeeting{}

	// Header fields are optional and not tracked per section.
	decodeSection(sections, "meeting_name", &meeting.MeetingName)
	decodeSection(sections, "meeting_date", &meeting.MeetingDate)
	decodeSection(sections, "meeting_type", &meeting.MeetingType)

	record := func(name string, ok bool) {
		if ok {
			meeting.Recovered = append(meeting.Recovered, name)
		} else {
			meeting.Missing = append(meeting.Missing, name)
		}
	}
	record(entities.SectionAttendees, decodeSection(sections, entities.SectionAttendees, &meeting.Attendees))
	record(entities.SectionSummary, decodeSection(sections, entities.SectionSummary, &meeting.Summary) && meeting.Summary != "")
	record(entities.SectionActionItems, decodeSection(sections, entities.SectionActionItems, &meeting.ActionItems))
	record(entities.SectionKeyDecisions, decodeSection(sections, entities.SectionKeyDecisions, &meeting.KeyDecisions))
	record(entities.SectionNextSteps, decodeSection(sections, entities.SectionNextSteps, &meeting.NextSteps))

	if len(meeting.Recovered) == 0 {
		return nil, fmt.Errorf("no recognizable sections in response")
	}

	normalize(meeting)
	return meeting, nil
}

// decodeSection decodes one named section, reporting whether it yielded a
// usable value.
func decodeSection(sections map[string]json.RawMessage, name string, target interface{}) bool {
	raw, ok := sections[name]
	if !ok || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, target) == nil
}

// normalize ensures sequence fields are non-nil so downstream rendering can
// range over them without nil checks.
func normalize(m *entities.ExtractedMeeting) {
	if m.Attendees == nil {
		m.Attendees = make([]string, 0)
	}
	if m.ActionItems == nil {
		m.ActionItems = make([]entities.ActionItem, 0)
	}
	if m.KeyDecisions == nil {
		m.KeyDecisions = make([]string, 0)
	}
	if m.NextSteps == nil {
		m.NextSteps = make([]string, 0)
	}
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// locateObject returns the outermost {...} span of the content, or "" when
// no braces are present. Models sometimes wrap the object in prose.
func locateObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
