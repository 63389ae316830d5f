package export

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	ucerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

// Supported formats
const (
	FormatWord = "word"
	FormatPDF  = "pdf"
)

const (
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"
)

// File is a rendered document
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Service renders stored meeting notes as documents
type Service struct {
	repo    repositories.MeetingRepository
	storage storage.Storage
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates an export service. store may be nil to skip archiving outputs.
func NewService(repo repositories.MeetingRepository, store storage.Storage, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, storage: store, logger: logger, metrics: m}
}

// Export renders meeting id in the given format. The meeting is looked up
// before the format is checked, so an unknown id wins over a bad format.
func (s *Service) Export(ctx context.Context, id uint, format string) (*File, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}
	if m == nil {
		return nil, ucerrors.ErrMeetingNotFound
	}

	doc := BuildDocument(m.ParsedNotes())

	var f *File
	switch format {
	case FormatWord:
		content, err := RenderDOCX(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ucerrors.ErrRenderFailed, err)
		}
		f = &File{Filename: fmt.Sprintf("notes_%d.docx", id), ContentType: contentTypeDOCX, Content: content}
	case FormatPDF:
		content, err := RenderPDF(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ucerrors.ErrRenderFailed, err)
		}
		f = &File{Filename: fmt.Sprintf("notes_%d.pdf", id), ContentType: contentTypePDF, Content: content}
	default:
		return nil, fmt.Errorf("%w: %q", ucerrors.ErrInvalidFormat, format)
	}

	s.archive(ctx, f)
	s.metrics.IncExport(format)
	return f, nil
}

// archive keeps a copy under outputs/. Failure does not block the download.
func (s *Service) archive(ctx context.Context, f *File) {
	if s.storage == nil {
		return
	}
	_, err := s.storage.Save(ctx, storage.OutputObject(f.Filename), bytes.NewReader(f.Content), int64(len(f.Content)), f.ContentType)
	if err != nil {
		s.logger.Warn("export.archive.failed", zap.String("filename", f.Filename), zap.Error(err))
	}
}
