package jobcontext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func TestBegin_DetachedFromParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey("request_id"), "r-1"))
	ctx := Begin(parent, "notes")
	cancel()

	assert.NoError(t, ctx.Err())
	assert.Equal(t, "r-1", ctx.Value(ctxKey("request_id")))

	meta := GetJobMetadata(ctx)
	assert.Equal(t, "notes", meta.JobType)
	assert.NotEqual(t, [16]byte{}, [16]byte(meta.JobID))
	assert.False(t, meta.StartTime.IsZero())
}

func TestRun_RecoversPanic(t *testing.T) {
	err := Run(context.Background(), func(context.Context) error {
		panic("kaboom")
	})

	var perr *PanicError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "kaboom", perr.Value)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestRun_ReturnsError(t *testing.T) {
	want := errors.New("failed")
	assert.Equal(t, want, Run(context.Background(), func(context.Context) error { return want }))
}

func TestElapsed_OutsideJob(t *testing.T) {
	assert.Zero(t, Elapsed(context.Background()))
}
