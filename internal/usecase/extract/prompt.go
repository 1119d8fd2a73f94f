package extract

import (
	"fmt"
	"strings"
	"time"
)

const systemPrompt = "You are an expert meeting analyst. Extract structured information from transcripts accurately and comprehensively. Always respond with valid JSON only."

const defaultMeetingTypes = "Standard Meeting, Strategy Call, Discovery Call, Technical Consultation"

// buildPrompt renders the extraction prompt for a transcript. knownPeople and
// meetingTypes come from the reference databases and may be empty.
func buildPrompt(transcript string, knownPeople, meetingTypes []string, now time.Time) string {
	peopleContext := ""
	if len(knownPeople) > 0 {
		peopleContext = fmt.Sprintf(`
EXISTING PEOPLE IN DATABASE:
%s

When extracting attendees, try to match names to these existing people. If you find variations (e.g., "John" vs "John Smith"), use the full name from the database.
`, strings.Join(knownPeople, ", "))
	}

	types := defaultMeetingTypes
	if len(meetingTypes) > 0 {
		types = strings.Join(meetingTypes, ", ")
	}

	currentDate := now.Format("2006-01-02")

	return fmt.Sprintf(`Extract key information from this meeting transcript and return ONLY valid JSON.

%s

MEETING TYPES AVAILABLE: %s

TRANSCRIPT:
%s

INSTRUCTIONS:
1. Extract the meeting name/title (if not explicit, create a descriptive one)
2. Extract or infer the meeting date and time (if not found, use today's date: %s)
3. Determine the meeting type from the available options
4. Extract all attendee names mentioned in the transcript
5. Create a summary of key discussion points, decisions, and action items
6. If speaker labels are present (e.g., John:, Speaker 1:), preserve attribution for important points
7. Extract any action items or tasks mentioned, noting who they're assigned to

Return JSON with this exact structure:
{
    "meeting_name": "string - descriptive meeting title",
    "meeting_date": "string - ISO format YYYY-MM-DDTHH:MM:SS.000-07:00",
    "meeting_type": "string - one of the available meeting types",
    "attendees": ["array of attendee names"],
    "summary": "string - comprehensive summary including key points, decisions, and action items with speaker attribution where relevant",
    "action_items": [
        {
            "task": "string - description of the task",
            "assignee": "string - person assigned (if mentioned)",
            "due_date": "string - ONLY if explicitly mentioned in transcript, otherwise null"
        }
    ],
    "key_decisions": ["array of key decisions made"],
    "next_steps": ["array of next steps or follow-up actions"]
}

CRITICAL RULES:
- Return ONLY the JSON object, no additional text
- Use ISO 8601 format for dates with timezone offset
- If date/time is not in transcript, use %s as the date
- NEVER invent or hallucinate due dates - only use dates explicitly mentioned in the transcript
- If no due date is mentioned for an action item, set due_date to null
- Be comprehensive in the summary but concise
- Preserve speaker attribution for action items and decisions
- Only include attendees who are actually mentioned or speak in the transcript
- If meeting type is unclear, default to Standard Meeting
- Do NOT make up information that is not in the transcript`,
		peopleContext, types, transcript, currentDate, currentDate)
}
