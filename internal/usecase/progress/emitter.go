package progress

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Phase is a named stage of the progress stream
type Phase string

const (
	PhaseUploading       Phase = "Uploading"
	PhaseTranscription   Phase = "Transcription"
	PhaseTranslation     Phase = "Translation"
	PhaseOptimization    Phase = "Optimization"
	PhaseNotesGeneration Phase = "Notes Generation"
	PhaseDone            Phase = "Done"
)

// Event is one progress update sent to the client
type Event struct {
	Step     Phase                     `json:"step"`
	Progress int                       `json:"progress"`
	Notes    *entities.StructuredNotes `json:"notes,omitempty"`
}

// Terminal reports whether this is the final event of a stream
func (e Event) Terminal() bool {
	return e.Notes != nil
}

// Sink receives events; an error stops the stream
type Sink func(Event) error

// Config controls the synthetic schedule
type Config struct {
	FirstPhase Phase
	PhaseTick  time.Duration
	NotesTick  time.Duration
}

// Emitter drives the phase schedule and merges it with a Future's completion
type Emitter struct {
	phases    []Phase
	phaseTick time.Duration
	notesTick time.Duration
}

// NewEmitter creates an emitter. FirstPhase defaults to Transcription.
func NewEmitter(cfg Config) *Emitter {
	first := cfg.FirstPhase
	if first != PhaseUploading {
		first = PhaseTranscription
	}
	return &Emitter{
		phases:    []Phase{first, PhaseTranslation, PhaseOptimization},
		phaseTick: cfg.PhaseTick,
		notesTick: cfg.NotesTick,
	}
}

// Phases returns every phase the emitter reports, in order
func (e *Emitter) Phases() []Phase {
	return append(append([]Phase{}, e.phases...), PhaseNotesGeneration)
}

// Run streams the schedule to sink. Cosmetic phases step 0..100 by 25; notes
// generation steps by 10 until the future resolves, then the terminal event
// carries the notes. Returns early if sink fails or ctx ends; the background
// task keeps running either way.
func (e *Emitter) Run(ctx context.Context, f *Future, sink Sink) error {
	for _, phase := range e.phases {
		for pct := 0; pct <= 100; pct += 25 {
			if err := sink(Event{Step: phase, Progress: pct}); err != nil {
				return err
			}
			if _, err := e.wait(ctx, e.phaseTick, nil); err != nil {
				return err
			}
		}
	}

	for pct := 0; pct < 100; pct += 10 {
		if err := sink(Event{Step: PhaseNotesGeneration, Progress: pct}); err != nil {
			return err
		}
		finished, err := e.wait(ctx, e.notesTick, f.Done())
		if err != nil {
			return err
		}
		if finished {
			break
		}
	}

	select {
	case <-f.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	return sink(Event{Step: PhaseNotesGeneration, Progress: 100, Notes: f.Result()})
}

// wait sleeps for d, returning early with true when done closes
func (e *Emitter) wait(ctx context.Context, d time.Duration, done <-chan struct{}) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return false, nil
	case <-done:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
