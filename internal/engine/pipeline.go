package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// TranscriptFetcher retrieves the ordered caption fragments of a video.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, id VideoID, langs []string) ([]Fragment, error)
}

// SummarizeRequest describes one summarize run. Zero Template, Languages and
// MaxTokens fall back to the package defaults; Model and Temperature are
// always sent as given.
type SummarizeRequest struct {
	VideoID     VideoID
	Model       string
	Template    Template
	Languages   []string
	MaxTokens   int
	Temperature float64
}

func (r SummarizeRequest) withDefaults() SummarizeRequest {
	if r.Template == "" {
		r.Template = TemplateSummary
	}
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if len(r.Languages) == 0 {
		r.Languages = []string{"en"}
	}
	return r
}

// Summarizer runs fetch → format → prompt → complete.
type Summarizer struct {
	Fetcher   TranscriptFetcher
	Completer Completer
}

// NewSummarizer wires a summarizer from its two collaborators.
func NewSummarizer(f TranscriptFetcher, c Completer) *Summarizer {
	return &Summarizer{Fetcher: f, Completer: c}
}

// Transcript fetches and formats the transcript of id.
func (s *Summarizer) Transcript(ctx context.Context, id VideoID, langs []string) (TranscriptOutput, error) {
	metrics.TranscriptRequests.Add(1)

	var frags []Fragment
	err := TrackOperation(ctx, "transcript:"+string(id), func(ctx context.Context) error {
		var ferr error
		frags, ferr = s.Fetcher.FetchTranscript(ctx, id, langs)
		return ferr
	})
	if err != nil {
		metrics.TranscriptErrors.Add(1)
		return TranscriptOutput{}, fmt.Errorf("%w: %s: %w", ErrTranscriptUnavailable, id, err)
	}
	return TranscriptOutput{
		VideoID:    string(id),
		Fragments:  len(frags),
		Transcript: FormatTranscript(frags),
	}, nil
}

// Summarize fetches the transcript of req.VideoID and returns the model's
// summary unmodified. Nothing is returned on partial failure.
func (s *Summarizer) Summarize(ctx context.Context, req SummarizeRequest) (string, error) {
	req = req.withDefaults()
	log := slog.With(
		slog.String("run", uuid.NewString()),
		slog.String("video", string(req.VideoID)),
	)

	tr, err := s.Transcript(ctx, req.VideoID, req.Languages)
	if err != nil {
		return "", err
	}
	log.Debug("transcript fetched",
		slog.Int("fragments", tr.Fragments),
		slog.String("head", TruncateForLog(tr.Transcript, 120)),
	)

	msgs, err := BuildMessages(req.Template, req.VideoID, tr.Transcript)
	if err != nil {
		return "", err
	}

	metrics.LLMCalls.Add(1)
	var summary string
	err = TrackOperation(ctx, "llm:"+string(req.VideoID), func(ctx context.Context) error {
		var cerr error
		summary, cerr = s.Completer.Complete(ctx, CompletionRequest{
			Model:       req.Model,
			Messages:    msgs,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		})
		return cerr
	})
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("%w: model %s: %w", ErrGenerationFailure, req.Model, err)
	}

	metrics.Summaries.Add(1)
	log.Info("summary generated",
		slog.String("model", req.Model),
		slog.String("template", string(req.Template)),
		slog.Int("chars", len(summary)),
	)
	return summary, nil
}
