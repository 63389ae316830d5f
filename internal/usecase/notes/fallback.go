package notes

import (
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// RemoteFailureSummary replaces the summary when the model call itself failed
const RemoteFailureSummary = "Meeting notes could not be generated for this recording."

// Fallback reasons
const (
	ReasonParse  = "parse"
	ReasonRemote = "remote"
)

// FallbackFromRaw keeps unparseable model output as the summary
func FallbackFromRaw(raw string, now time.Time) *entities.StructuredNotes {
	sn := &entities.StructuredNotes{ExecutiveSummary: raw}
	sn.Normalize(now.Format(entities.DateLayout))
	return sn
}

// FallbackFromError records a failed model call in the sentiment insights
func FallbackFromError(err error, now time.Time) *entities.StructuredNotes {
	sn := &entities.StructuredNotes{ExecutiveSummary: RemoteFailureSummary}
	if err != nil {
		sn.SentimentInsights = err.Error()
	}
	sn.Normalize(now.Format(entities.DateLayout))
	return sn
}
