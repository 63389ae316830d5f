package notes

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
)

// Model is the remote generative model: prompt plus audio in, text out
type Model interface {
	Generate(ctx context.Context, prompt, mimeType string, audio []byte) (string, error)
}

// Result is the outcome of one extraction
type Result struct {
	Notes          *entities.StructuredNotes
	FallbackReason string
	Duration       time.Duration
}

// Extractor turns audio into structured notes. It never fails: remote and
// parse errors are absorbed into fallback notes.
type Extractor struct {
	model   Model
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewExtractor creates an extractor over the given model
func NewExtractor(model Model, logger *zap.Logger, m *metrics.Metrics) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		model:   model,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Extract returns structured notes for the audio, never nil
func (e *Extractor) Extract(ctx context.Context, audio []byte, mimeType string) *entities.StructuredNotes {
	return e.Run(ctx, audio, mimeType).Notes
}

// Run performs the extraction and reports whether a fallback was used
func (e *Extractor) Run(ctx context.Context, audio []byte, mimeType string) (res Result) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = e.fallback(ReasonRemote, FallbackFromError(fmt.Errorf("panic in model call: %v", p), e.now()), start)
		}
	}()

	raw, err := e.model.Generate(ctx, Prompt, mimeType, audio)
	if err != nil {
		e.logger.Warn("notes.extract.remote_failed", zap.String("mime_type", mimeType), zap.Error(err))
		return e.fallback(ReasonRemote, FallbackFromError(err, e.now()), start)
	}

	sn, err := Parse(raw)
	if err != nil {
		e.logger.Warn("notes.extract.parse_failed", zap.Int("raw_len", len(raw)), zap.Error(err))
		return e.fallback(ReasonParse, FallbackFromRaw(raw, e.now()), start)
	}

	sn.Normalize(e.now().Format(entities.DateLayout))

	elapsed := time.Since(start)
	e.metrics.ObserveExtraction("ok", elapsed.Seconds())
	e.logger.Info("notes.extract.done", zap.Duration("duration", elapsed), zap.Int("key_points", len(sn.KeyPoints)))

	return Result{Notes: sn, Duration: elapsed}
}

func (e *Extractor) fallback(reason string, sn *entities.StructuredNotes, start time.Time) Result {
	elapsed := time.Since(start)
	e.metrics.ObserveExtraction("fallback", elapsed.Seconds())
	e.metrics.IncFallback(reason)
	return Result{Notes: sn, FallbackReason: reason, Duration: elapsed}
}
