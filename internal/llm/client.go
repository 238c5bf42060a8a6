// Package llm wraps the generative-text and embedding backend.
package llm

import "context"

// Client is the capability the dialogue engine and retriever consume.
// Complete generates free text from a prompt; Embed vectorizes text for
// similarity search. Both block until done or failed; callers own the
// fallback behavior.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}
