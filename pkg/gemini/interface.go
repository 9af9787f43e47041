package gemini

import "context"

// IGemini defines the interface for the Gemini-backed event extractor.
// Implementations are safe for concurrent use.
type IGemini interface {
	// ExtractEvent turns one natural-language sentence into structured
	// event fields.
	ExtractEvent(ctx context.Context, req EventRequest) (*EventFields, error)

	// Model returns the model being used
	Model() string
}
