package entities

import (
	"time"

	"gorm.io/datatypes"
)

// TranscriptPlaceholder is stored in place of a transcript; the model consumes the audio directly.
const TranscriptPlaceholder = "(Transcript handled by Gemini)"

// Metadata keys recorded alongside each meeting
const (
	MetaMimeType       = "mime_type"
	MetaSizeBytes      = "size_bytes"
	MetaStorage        = "storage_location"
	MetaModel          = "model"
	MetaProcessingMs   = "processing_ms"
	MetaFallbackReason = "fallback_reason"
)

// Meeting is one processed upload. Rows are append-only.
type Meeting struct {
	ID         uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename   string            `json:"filename" gorm:"type:varchar(200);not null"`
	Transcript string            `json:"transcript" gorm:"type:text"`
	Notes      string            `json:"notes" gorm:"type:text"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:json"`
	CreatedAt  time.Time         `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting builds a meeting record ready to be inserted
func NewMeeting(filename string, notes *StructuredNotes) (*Meeting, error) {
	raw, err := notes.Encode()
	if err != nil {
		return nil, err
	}
	return &Meeting{
		Filename:   filename,
		Transcript: TranscriptPlaceholder,
		Notes:      raw,
		Metadata:   datatypes.JSONMap{},
	}, nil
}

// ParsedNotes resolves the raw notes column
func (m *Meeting) ParsedNotes() Notes {
	return ParseNotes(m.Notes)
}
