package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingIDRequest binds the :id path parameter
type MeetingIDRequest struct {
	ID uint `param:"id" validate:"required,min=1"`
}

// DownloadRequest binds GET /download/:id/:format
type DownloadRequest struct {
	ID     uint   `param:"id" validate:"required,min=1"`
	Format string `param:"format" validate:"required"`
}

// MeetingResponse represents a stored meeting.
// Notes is an object when NotesFormat is "structured" and a string when it is
// "legacy"; clients must branch on NotesFormat before reading Notes.
type MeetingResponse struct {
	ID          uint           `json:"id"`
	Filename    string         `json:"filename"`
	Notes       entities.Notes `json:"notes" swaggertype:"object"`
	NotesFormat string         `json:"notes_format" enums:"structured,legacy"`
	CreatedAt   time.Time      `json:"created_at"`
}

// StatsResponse represents dashboard statistics
type StatsResponse struct {
	TotalUploads int      `json:"total_uploads"`
	TotalWords   int      `json:"total_words"`
	Labels       []string `json:"labels"`
	Uploads      []int    `json:"uploads"`
}
