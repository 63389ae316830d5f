package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes/internal/usecase/progress"
	"github.com/johnquangdev/meeting-notes/internal/usecase/stats"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

type cannedModel struct {
	out string
}

func (m cannedModel) Generate(context.Context, string, string, []byte) (string, error) {
	return m.out, nil
}

const cannedNotes = `{"title":"Design review","executiveSummary":"Reviewed the API.","keyPoints":["REST stays"],"actionItems":["Write docs"],"sentiment":"Positive"}`

type testServer struct {
	e    *echo.Echo
	repo repositories.MeetingRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := databasetest.New(t)
	repo := repository.NewMeetingRepository(db)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	mem := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	extractor := notes.NewExtractor(cannedModel{out: notes.WrapCodeFence(cannedNotes)}, nil, nil)
	meetingSvc := meeting.NewService(repo, store, extractor, "test-model", nil, nil)
	emitter := progress.NewEmitter(progress.Config{PhaseTick: time.Millisecond, NotesTick: time.Millisecond})

	sqlDB, err := db.DB()
	require.NoError(t, err)

	cfg := &config.Config{Environment: "test"}
	router := NewRouter(cfg,
		NewMeetingHandler(meetingSvc, emitter, nil, nil),
		NewExportHandler(export.NewService(repo, store, nil, nil), nil),
		NewStatsHandler(stats.NewService(repo, mem, time.Minute, nil, nil), nil),
		nil,
		sqlDB,
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	router.Setup(e)

	return &testServer{e: e, repo: repo}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func multipartRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if field != "" {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("other", "value"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUpload_MissingFile(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/api/upload", "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "No file uploaded", body["error"])
	assert.Equal(t, "MISSING_FILE", body["code"])
}

func TestUpload_EmptyFilename(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/api/upload", "file", "", []byte("data")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No selected file", decodeError(t, rec)["error"])
}

func TestUpload_Success(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/api/upload", "file", "design review.mp3", []byte("ID3audio")))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ID          uint                     `json:"id"`
		Filename    string                   `json:"filename"`
		NotesFormat string                   `json:"notes_format"`
		Notes       entities.StructuredNotes `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "design_review.mp3", resp.Filename)
	assert.Equal(t, "structured", resp.NotesFormat)
	assert.Equal(t, "Design review", resp.Notes.Title)
	assert.Equal(t, []string{"Write docs"}, resp.Notes.ActionItems)
}

func TestUploadWithProgress_StreamsAndPersists(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/api/upload_with_progress", "file", "sync.wav", []byte("RIFF")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	var events []progress.Event
	scanner := bufio.NewScanner(strings.NewReader(rec.Body.String()))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, "data: "), line)
		var ev progress.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		events = append(events, ev)
	}

	require.NotEmpty(t, events)
	assert.Equal(t, progress.PhaseTranscription, events[0].Step)

	last := events[len(events)-1]
	assert.Equal(t, progress.PhaseNotesGeneration, last.Step)
	assert.Equal(t, 100, last.Progress)
	require.NotNil(t, last.Notes)
	assert.Equal(t, "Design review", last.Notes.Title)

	list, err := s.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sync.wav", list[0].Filename)
}

func TestUploadWithProgress_MissingFileIsJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/api/upload_with_progress", "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")
}

func TestHistory_NewestFirst(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.repo.Create(ctx, &entities.Meeting{Filename: "old.wav", Notes: "Sentiment\nok", CreatedAt: base}))
	require.NoError(t, s.repo.Create(ctx, &entities.Meeting{Filename: "new.wav", Notes: cannedNotes, CreatedAt: base.Add(time.Hour)}))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "new.wav", list[0]["filename"])
	assert.Equal(t, "structured", list[0]["notes_format"])
	assert.Equal(t, "old.wav", list[1]["filename"])
	assert.Equal(t, "Sentiment\nok", list[1]["notes"])
}

func TestHistory_EmptyArray(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetMeeting(t *testing.T) {
	s := newTestServer(t)
	m := &entities.Meeting{Filename: "a.wav", Notes: cannedNotes}
	require.NoError(t, s.repo.Create(context.Background(), m))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/meetings/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/meetings/77", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEETING_NOT_FOUND", decodeError(t, rec)["code"])

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/meetings/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownload(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.repo.Create(context.Background(), &entities.Meeting{Filename: "a.wav", Notes: cannedNotes}))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/download/1/pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `attachment; filename="notes_1.pdf"`)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/download/1/word", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestDownload_Errors(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.repo.Create(context.Background(), &entities.Meeting{Filename: "a.wav", Notes: cannedNotes}))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/download/1/txt", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid format", body["error"])
	assert.Equal(t, "INVALID_EXPORT_FORMAT", body["code"])

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/download/9/txt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.repo.Create(context.Background(), &entities.Meeting{Filename: "a.wav", Notes: "three word notes"}))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalUploads int      `json:"total_uploads"`
		TotalWords   int      `json:"total_words"`
		Labels       []string `json:"labels"`
		Uploads      []int    `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TotalUploads)
	assert.Equal(t, 3, body.TotalWords)
	assert.Len(t, body.Labels, 7)
	assert.Equal(t, 1, body.Uploads[6])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test","database":"ok"}`, rec.Body.String())
}
