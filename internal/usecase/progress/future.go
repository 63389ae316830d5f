package progress

import (
	"context"
	"errors"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// Task produces notes in the background
type Task func(ctx context.Context) (*entities.StructuredNotes, error)

// Fallback turns a task failure into notes
type Fallback func(err error) *entities.StructuredNotes

var errNoNotes = errors.New("task produced no notes")

// Future is the pending result of a background Task
type Future struct {
	done  chan struct{}
	notes *entities.StructuredNotes
	err   error
}

// Start runs task on its own goroutine with a context that survives
// cancellation of ctx. Errors and panics are passed to fallback, so the
// future always resolves with notes.
func Start(ctx context.Context, task Task, fallback Fallback) *Future {
	f := &Future{done: make(chan struct{})}
	jobCtx := jobcontext.Begin(ctx, "notes_generation")

	go func() {
		defer close(f.done)

		var notes *entities.StructuredNotes
		err := jobcontext.Run(jobCtx, func(ctx context.Context) error {
			var err error
			notes, err = task(ctx)
			if err == nil && notes == nil {
				err = errNoNotes
			}
			return err
		})
		if err != nil {
			f.err = err
			notes = fallback(err)
		}
		f.notes = notes
	}()

	return f
}

// Done is closed once the result is available
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the task finishes and returns its notes
func (f *Future) Result() *entities.StructuredNotes {
	<-f.done
	return f.notes
}

// Err blocks until the task finishes and returns the error the fallback absorbed, if any
func (f *Future) Err() error {
	<-f.done
	return f.err
}
