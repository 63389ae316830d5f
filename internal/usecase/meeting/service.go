package meeting

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	ucerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes/internal/usecase/progress"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// Upload is an audio file received from a client
type Upload struct {
	Filename string
	Data     []byte
}

// Extractor produces notes for audio
type Extractor interface {
	Run(ctx context.Context, audio []byte, mimeType string) notes.Result
}

// Service orchestrates uploads, history and lookups
type Service struct {
	repo      repositories.MeetingRepository
	storage   storage.Storage
	extractor Extractor
	modelName string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewService creates a meeting service
func NewService(
	repo repositories.MeetingRepository,
	store storage.Storage,
	extractor Extractor,
	modelName string,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		storage:   store,
		extractor: extractor,
		modelName: modelName,
		logger:    logger,
		metrics:   m,
	}
}

// stored is an upload that has been written to storage
type stored struct {
	filename string
	mimeType string
	location string
	data     []byte
}

// Process stores the upload, extracts notes and persists the meeting before returning
func (s *Service) Process(ctx context.Context, up Upload) (*entities.Meeting, error) {
	st, err := s.store(ctx, up)
	if err != nil {
		return nil, err
	}
	s.metrics.IncUpload("sync")

	return s.extractAndSave(ctx, st)
}

// StartProcessing stores the upload and runs extraction and persistence in the
// background. The returned future always resolves with notes, even if the
// request context is cancelled meanwhile.
func (s *Service) StartProcessing(ctx context.Context, up Upload) (*progress.Future, error) {
	st, err := s.store(ctx, up)
	if err != nil {
		return nil, err
	}
	s.metrics.IncUpload("stream")

	task := func(ctx context.Context) (*entities.StructuredNotes, error) {
		m, err := s.extractAndSave(ctx, st)

		job := jobcontext.GetJobMetadata(ctx)
		s.logger.Info("meeting.job.finished",
			zap.String("job_id", job.JobID.String()),
			zap.String("job_type", job.JobType),
			zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
		)

		if m == nil {
			return nil, err
		}
		// A persistence failure is logged in extractAndSave; the client still gets notes.
		return m.ParsedNotes().Structured, nil
	}
	fallback := func(err error) *entities.StructuredNotes {
		s.logger.Error("meeting.process.failed", zap.String("filename", st.filename), zap.Error(err))
		return notes.FallbackFromError(err, time.Now().UTC())
	}

	return progress.Start(ctx, task, fallback), nil
}

func (s *Service) store(ctx context.Context, up Upload) (*stored, error) {
	if up.Filename == "" {
		return nil, ucerrors.ErrEmptyFilename
	}

	st := &stored{
		filename: StoredFilename(up.Filename),
		data:     up.Data,
	}
	st.mimeType = notes.DetectMimeType(st.filename, up.Data)

	loc, err := s.storage.Save(ctx, storage.UploadObject(st.filename), bytes.NewReader(up.Data), int64(len(up.Data)), st.mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrStorageFailed, err)
	}
	st.location = loc

	s.logger.Info("meeting.upload.stored",
		zap.String("filename", st.filename),
		zap.String("mime_type", st.mimeType),
		zap.Int("size", len(up.Data)),
	)
	return st, nil
}

// extractAndSave returns the meeting even when saving it failed, so callers can still use the notes
func (s *Service) extractAndSave(ctx context.Context, st *stored) (*entities.Meeting, error) {
	res := s.extractor.Run(ctx, st.data, st.mimeType)

	m, err := entities.NewMeeting(st.filename, res.Notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	m.Metadata[entities.MetaMimeType] = st.mimeType
	m.Metadata[entities.MetaSizeBytes] = len(st.data)
	m.Metadata[entities.MetaStorage] = st.location
	m.Metadata[entities.MetaModel] = s.modelName
	m.Metadata[entities.MetaProcessingMs] = res.Duration.Milliseconds()
	if res.FallbackReason != "" {
		m.Metadata[entities.MetaFallbackReason] = res.FallbackReason
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("meeting.save.failed", zap.String("filename", st.filename), zap.Error(err))
		return m, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}

	s.logger.Info("meeting.saved", zap.Uint("id", m.ID), zap.String("filename", m.Filename))
	return m, nil
}

// History returns all meetings, newest first
func (s *Service) History(ctx context.Context) ([]*entities.Meeting, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}
	return list, nil
}

// Get returns one meeting or ErrMeetingNotFound
func (s *Service) Get(ctx context.Context, id uint) (*entities.Meeting, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}
	if m == nil {
		return nil, ucerrors.ErrMeetingNotFound
	}
	return m, nil
}
