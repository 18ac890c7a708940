package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// CompletionRequest is one chat completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Completer sends a chat completion and returns the text of the first choice.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// KitCompleter talks to an OpenAI-compatible chat endpoint through go-kit/llm.
type KitCompleter struct {
	APIBase    string
	APIKey     string
	HTTPClient *http.Client
}

// NewKitCompleter builds a completer from the LLM connection settings in c.
func NewKitCompleter(c Config) *KitCompleter {
	return &KitCompleter{
		APIBase:    c.LLMAPIBase,
		APIKey:     c.LLMAPIKey,
		HTTPClient: &http.Client{Timeout: c.LLMTimeout},
	}
}

// Complete sends req using the model named in the request.
func (k *KitCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	hc := k.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	pinned := &http.Client{
		Timeout:   hc.Timeout,
		Transport: &genParamsTransport{base: base, maxTokens: req.MaxTokens, temperature: req.Temperature},
	}
	client := llm.NewClient(k.APIBase, k.APIKey, req.Model, llm.WithHTTPClient(pinned))

	system, user := splitMessages(req.Messages)
	return client.Complete(ctx, system, user,
		llm.WithChatTemperature(req.Temperature),
		llm.WithChatMaxTokens(req.MaxTokens),
	)
}

// splitMessages folds messages into the system and user prompts go-kit/llm expects.
func splitMessages(msgs []Message) (system, user string) {
	var sys, usr []string
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			sys = append(sys, m.Content)
		default:
			usr = append(usr, m.Content)
		}
	}
	return strings.Join(sys, "\n\n"), strings.Join(usr, "\n\n")
}

// genParamsTransport writes temperature and max_tokens into every JSON POST
// body, so an explicit temperature of 0 is sent even when the client library
// omits zero values.
type genParamsTransport struct {
	base        http.RoundTripper
	maxTokens   int
	temperature float64
}

func (t *genParamsTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Method != http.MethodPost || r.Body == nil {
		return t.base.RoundTrip(r)
	}
	raw, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return nil, err
	}
	body := raw
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) == nil && fields != nil {
		fields["temperature"], _ = json.Marshal(t.temperature)
		_, hasMax := fields["max_tokens"]
		_, hasMaxCompletion := fields["max_completion_tokens"]
		if !hasMax && !hasMaxCompletion && t.maxTokens > 0 {
			fields["max_tokens"], _ = json.Marshal(t.maxTokens)
		}
		if patched, err := json.Marshal(fields); err == nil {
			body = patched
		}
	}

	out := r.Clone(r.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return t.base.RoundTrip(out)
}
