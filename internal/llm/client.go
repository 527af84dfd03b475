package llm

import (
	"context"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

// Client is the boundary to the downstream generative-text provider.
// Generate is potentially slow and blocking; the dispatcher runs it off the
// request path so submitting callers never wait on network I/O directly.
// Implementations must be safe for use from the single dispatcher worker.
type Client interface {
	Generate(ctx context.Context, turns []prompt.Turn) (string, error)
	Model() string
}
