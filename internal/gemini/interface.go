package gemini

import "context"

// ClientInterface defines the interface for checklist generation.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	GenerateChecklist(ctx context.Context, topic string, durationMinutes int) ([]string, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
