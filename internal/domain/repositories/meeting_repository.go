package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Meetings are append-only: there is no update or delete.
type MeetingRepository interface {
	// Create inserts a meeting and assigns its ID and CreatedAt
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by ID, returning nil when absent
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// List retrieves all meetings, newest first
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Count returns the number of stored meetings
	Count(ctx context.Context) (int64, error)
}
