package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database/databasetest"
)

func TestMeetingRepository_CreateAndFind(t *testing.T) {
	repo := NewMeetingRepository(databasetest.New(t))
	ctx := context.Background()

	m, err := entities.NewMeeting("standup.mp3", &entities.StructuredNotes{Title: "Standup"})
	require.NoError(t, err)
	m.Metadata["mime_type"] = "audio/mpeg"

	require.NoError(t, repo.Create(ctx, m))
	assert.NotZero(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "standup.mp3", got.Filename)
	assert.Equal(t, entities.TranscriptPlaceholder, got.Transcript)
	assert.Equal(t, "audio/mpeg", got.Metadata["mime_type"])
	assert.True(t, got.ParsedNotes().IsStructured())
}

func TestMeetingRepository_FindByID_Missing(t *testing.T) {
	repo := NewMeetingRepository(databasetest.New(t))

	got, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMeetingRepository_ListNewestFirst(t *testing.T) {
	repo := NewMeetingRepository(databasetest.New(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"a.wav", "b.wav", "c.wav"} {
		m := &entities.Meeting{Filename: name, Notes: "x", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(ctx, m))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c.wav", list[0].Filename)
	assert.Equal(t, "a.wav", list[2].Filename)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestMeetingRepository_ListNewestFirst_OutOfOrderInserts(t *testing.T) {
	repo := NewMeetingRepository(databasetest.New(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	inserts := []struct {
		name  string
		hours int
	}{
		{"c.wav", 2},
		{"a.wav", 0},
		{"b.wav", 1},
	}
	for _, in := range inserts {
		m := &entities.Meeting{Filename: in.name, Notes: "x", CreatedAt: base.Add(time.Duration(in.hours) * time.Hour)}
		require.NoError(t, repo.Create(ctx, m))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, m := range list {
		names = append(names, m.Filename)
	}
	assert.Equal(t, []string{"c.wav", "b.wav", "a.wav"}, names)
}

func TestMeetingRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMeetingRepository(databasetest.New(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &entities.Meeting{Filename: "same.wav", Notes: "n"}))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)

	seen := map[uint]bool{}
	for _, m := range list {
		seen[m.ID] = true
	}
	assert.Len(t, seen, 10)
}
