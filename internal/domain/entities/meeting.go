package entities

// Section names the LLM is asked to fill. The parser reports per section
// whether it could be recovered from the model output.
const (
	SectionAttendees    = "attendees"
	SectionSummary      = "summary"
	SectionActionItems  = "action_items"
	SectionKeyDecisions = "key_decisions"
	SectionNextSteps    = "next_steps"
)

// ExtractedMeeting is the structured result of running a transcript through
// the LLM extraction prompt. Produced once per run; never mutated after
// creation.
type ExtractedMeeting struct {
	MeetingName  string       `json:"meeting_name"`
	MeetingDate  string       `json:"meeting_date"`
	MeetingType  string       `json:"meeting_type"`
	Attendees    []string     `json:"attendees"`
	Summary      string       `json:"summary" validate:"required"`
	ActionItems  []ActionItem `json:"action_items"`
	KeyDecisions []string     `json:"key_decisions"`
	NextSteps    []string     `json:"next_steps"`

	// Recovered and Missing track which sections the tolerant parser could
	// decode. They are run metadata, not part of the wire schema.
	Recovered []string `json:"-"`
	Missing   []string `json:"-"`
}

// ActionItem is a single task extracted from the transcript. Assignee and
// DueDate are optional; due dates are only ever taken verbatim from the
// transcript, never inferred.
type ActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}
