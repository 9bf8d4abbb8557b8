package llm

import "context"

// Options carries the per-call sampling parameters. Zero values are omitted
// from the request so the model's defaults apply.
type Options struct {
	Temperature   float64
	TopP          float64
	NumPredict    int
	RepeatPenalty float64
}

// Request is a single non-streamed chat exchange.
type Request struct {
	System string
	Prompt string
	// JSON constrains the model to emit a single JSON object.
	JSON    bool
	Options Options
}

// Chatter is the chat capability consumed by the drafting components.
type Chatter interface {
	Chat(ctx context.Context, req Request) (string, error)
}
