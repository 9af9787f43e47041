package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// EventRequest is the input for event extraction: the raw user text plus the
// temporal context the model needs to resolve relative dates.
type EventRequest struct {
	Text        string
	Timezone    string // IANA identifier, e.g. "Asia/Tokyo"
	CurrentTime string // current instant, ISO-8601 with offset
}

// EventFields is the structured event extracted from user input by the model.
// Every field except Title and Start may be absent.
type EventFields struct {
	Title               string `json:"title"`
	Start               string `json:"start"` // ISO-8601 with offset
	End                 string `json:"end,omitempty"`
	Location            string `json:"location,omitempty"`
	Notes               string `json:"notes,omitempty"`
	RecurrenceFrequency string `json:"recurrence_frequency,omitempty"`
	RecurrenceInterval  int    `json:"recurrence_interval,omitempty"`
	RecurrenceEndDate   string `json:"recurrence_end_date,omitempty"`
}
