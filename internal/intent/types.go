package intent

// Label is the enumerated action category classified for a segment.
type Label string

const (
	LabelCreateReminder Label = "create_reminder"
	LabelCreateNote     Label = "create_note"
	LabelCreateLedger   Label = "create_ledger"
	LabelAddExpense     Label = "add_expense"
	LabelScheduleEvent  Label = "schedule_event"
	LabelAddFriend      Label = "add_friend"
	LabelCancelReminder Label = "cancel_reminder"
	LabelListReminders  Label = "list_reminders"
	LabelUpdateReminder Label = "update_reminder"
	LabelChitChat       Label = "chit_chat"
	LabelGeneralQuery   Label = "general_query"
)

// Entity map keys. Absence of a key means "not detected", never an error.
const (
	EntityTime   = "time"
	EntityDate   = "date"
	EntityPerson = "person"
	EntityAmount = "amount"
)

// Segment is one classified slice of an utterance, assumed to carry exactly
// one intent.
type Segment struct {
	TextSegment string         `json:"text_segment"`
	Type        Label          `json:"type"`
	Confidence  float64        `json:"confidence"`
	Entities    map[string]any `json:"entities"`
}

// Classification is the single-intent classification result.
type Classification struct {
	Intent       Label          `json:"intent"`
	Confidence   float64        `json:"confidence"`
	Entities     map[string]any `json:"entities"`
	OriginalText string         `json:"original_text"`
}

// MultiClassification is the multi-intent classification result: one Segment
// per slice emitted by the segmenter, in utterance order.
type MultiClassification struct {
	Intents      []Segment `json:"intents"`
	OriginalText string    `json:"original_text"`
}

// Outcome is the immutable success/failure record for one segment's
// end-to-end processing.
type Outcome struct {
	Success     bool           `json:"success"`
	Intent      Label          `json:"intent"`
	TextSegment string         `json:"text_segment"`
	Position    int            `json:"position"` // 1-based, matches segmentation order
	Data        map[string]any `json:"data"`
	Error       string         `json:"error,omitempty"`
}

// AggregateResult is the combined response covering all segments of one
// utterance. Success is true iff every outcome succeeded.
type AggregateResult struct {
	Success           bool      `json:"success"`
	Message           string    `json:"message"`
	Results           []Outcome `json:"results"`
	TotalIntents      int       `json:"total_intents"`
	SuccessfulIntents int       `json:"successful_intents"`
	OriginalText      string    `json:"original_text"`
}

// InterpretInput is the input for the full text pipeline.
type InterpretInput struct {
	Text        string
	MultiIntent bool // false skips segmentation (single-intent path)
}

// ProcessInput carries already-classified intent data. Exactly one of Single
// or Intents is expected to be set; both shapes route through the same
// per-segment isolation logic.
type ProcessInput struct {
	Single       *Classification
	Intents      []Segment
	OriginalText string
}
