package presenter

import (
	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/stats"
)

// ToMeetingResponse converts a meeting entity to its response DTO
func ToMeetingResponse(m *entities.Meeting) dto.MeetingResponse {
	n := m.ParsedNotes()
	return dto.MeetingResponse{
		ID:          m.ID,
		Filename:    m.Filename,
		Notes:       n,
		NotesFormat: string(n.Kind),
		CreatedAt:   m.CreatedAt,
	}
}

// ToMeetingListResponse converts meetings preserving order. Never nil.
func ToMeetingListResponse(meetings []*entities.Meeting) []dto.MeetingResponse {
	out := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToStatsResponse converts aggregated stats to the response DTO
func ToStatsResponse(s *stats.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalUploads: s.TotalUploads,
		TotalWords:   s.TotalWords,
		Labels:       s.Labels,
		Uploads:      s.Uploads,
	}
}
