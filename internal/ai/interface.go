package ai

import (
	"context"
)

// CompletionProvider defines the contract for interacting with generative models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type CompletionProvider interface {
	// Complete sends a system prompt and a user prompt to the model and returns
	// the raw completion text. The text is not guaranteed to be valid JSON even
	// when the prompt demands it.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
