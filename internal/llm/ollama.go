package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	olla "github.com/ollama/ollama/api"

	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

// Ollama is a chat client for the Ollama API.
type Ollama struct {
	client *olla.Client
	model  string
	log    *logger.Logger
}

// NewOllama creates a chat client for the given model. baseURL defaults to
// "http://localhost:11434" when empty. The timeout bounds every request made
// through this client.
func NewOllama(model, baseURL string, timeout time.Duration, log *logger.Logger) (*Ollama, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	hc := &http.Client{
		Timeout: timeout,
	}

	return &Ollama{
		client: olla.NewClient(parsedURL, hc),
		model:  model,
		log:    log,
	}, nil
}

// Chat performs one non-streamed chat completion and returns the trimmed
// message content. No retries: timeout surfaces as ErrLLMTimeout, any other
// failure as ErrLLMUnavailable.
func (o *Ollama) Chat(ctx context.Context, req Request) (string, error) {
	messages := make([]olla.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, olla.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, olla.Message{Role: "user", Content: req.Prompt})

	stream := false
	chatReq := &olla.ChatRequest{
		Model:    o.model,
		Messages: messages,
		Stream:   &stream,
		Options:  req.Options.toMap(),
	}
	if req.JSON {
		chatReq.Format = json.RawMessage(`"json"`)
	}

	var content strings.Builder
	err := o.client.Chat(ctx, chatReq, func(resp olla.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			o.log.WithError(err).Error("Chat request timed out")
			return "", fmt.Errorf("%w: %v", models.ErrLLMTimeout, err)
		}
		o.log.WithError(err).Error("Chat request failed")
		return "", fmt.Errorf("%w: %v", models.ErrLLMUnavailable, err)
	}

	return strings.TrimSpace(content.String()), nil
}

func (opts Options) toMap() map[string]interface{} {
	// Temperature is always sent: several callers rely on 0 for
	// deterministic output.
	m := map[string]interface{}{
		"temperature": opts.Temperature,
	}
	if opts.TopP > 0 {
		m["top_p"] = opts.TopP
	}
	if opts.NumPredict > 0 {
		m["num_predict"] = opts.NumPredict
	}
	if opts.RepeatPenalty > 0 {
		m["repeat_penalty"] = opts.RepeatPenalty
	}
	return m
}

// compile-time check that Ollama satisfies the Chatter interface
var _ Chatter = (*Ollama)(nil)
