package meeting

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	ucerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
)

type fakeExtractor struct {
	res  notes.Result
	mime string
}

func (f *fakeExtractor) Run(_ context.Context, _ []byte, mimeType string) notes.Result {
	f.mime = mimeType
	return f.res
}

type failingStorage struct{}

func (failingStorage) Save(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", errors.New("disk full")
}

func newTestService(t *testing.T, ex Extractor) (*Service, repositories.MeetingRepository, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root)
	require.NoError(t, err)
	repo := repository.NewMeetingRepository(databasetest.New(t))
	return NewService(repo, store, ex, "gemini-test", nil, nil), repo, root
}

func TestProcess_StoresFileAndMeeting(t *testing.T) {
	ex := &fakeExtractor{res: notes.Result{Notes: &entities.StructuredNotes{Title: "Kickoff", KeyPoints: []string{"a"}}}}
	svc, repo, root := newTestService(t, ex)

	m, err := svc.Process(context.Background(), Upload{Filename: "kick off.mp3", Data: []byte("ID3data")})
	require.NoError(t, err)

	assert.Equal(t, "kick_off.mp3", m.Filename)
	assert.Equal(t, "audio/mpeg", ex.mime)

	b, err := os.ReadFile(filepath.Join(root, "uploads", "kick_off.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "ID3data", string(b))

	got, err := repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kickoff", got.ParsedNotes().Structured.Title)
	assert.Equal(t, "gemini-test", got.Metadata[entities.MetaModel])
	assert.Equal(t, "audio/mpeg", got.Metadata[entities.MetaMimeType])
}

func TestProcess_RecordsFallbackReason(t *testing.T) {
	ex := &fakeExtractor{res: notes.Result{Notes: &entities.StructuredNotes{}, FallbackReason: notes.ReasonParse}}
	svc, _, _ := newTestService(t, ex)

	m, err := svc.Process(context.Background(), Upload{Filename: "x.wav", Data: []byte("RIFF")})
	require.NoError(t, err)
	assert.Equal(t, notes.ReasonParse, m.Metadata[entities.MetaFallbackReason])
}

func TestProcess_EmptyFilename(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeExtractor{})

	_, err := svc.Process(context.Background(), Upload{Data: []byte("x")})
	assert.ErrorIs(t, err, ucerrors.ErrEmptyFilename)
}

func TestProcess_StorageFailure(t *testing.T) {
	repo := repository.NewMeetingRepository(databasetest.New(t))
	svc := NewService(repo, failingStorage{}, &fakeExtractor{}, "m", nil, nil)

	_, err := svc.Process(context.Background(), Upload{Filename: "a.wav"})
	assert.ErrorIs(t, err, ucerrors.ErrStorageFailed)
}

func TestStartProcessing_PersistsAfterRequestCancelled(t *testing.T) {
	ex := &fakeExtractor{res: notes.Result{Notes: &entities.StructuredNotes{Title: "Async"}}}
	svc, repo, _ := newTestService(t, ex)

	ctx, cancel := context.WithCancel(context.Background())
	f, err := svc.StartProcessing(ctx, Upload{Filename: "async.ogg", Data: []byte("OggS")})
	require.NoError(t, err)
	cancel()

	sn := f.Result()
	require.NotNil(t, sn)
	assert.Equal(t, "Async", sn.Title)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "async.ogg", list[0].Filename)
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeExtractor{})

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ucerrors.ErrMeetingNotFound)
}

func TestHistory_NewestFirst(t *testing.T) {
	ex := &fakeExtractor{res: notes.Result{Notes: &entities.StructuredNotes{}}}
	svc, _, _ := newTestService(t, ex)
	ctx := context.Background()

	for _, name := range []string{"first.wav", "second.wav"} {
		_, err := svc.Process(ctx, Upload{Filename: name, Data: []byte("RIFF")})
		require.NoError(t, err)
	}

	list, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, strings.HasPrefix(list[0].Filename, "second"))
}
