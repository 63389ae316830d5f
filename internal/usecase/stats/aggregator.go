package stats

import (
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Days is the length of the upload histogram
const Days = 7

// Stats summarizes the stored meetings
type Stats struct {
	TotalUploads int      `json:"total_uploads"`
	TotalWords   int      `json:"total_words"`
	Labels       []string `json:"labels"`
	Uploads      []int    `json:"uploads"`
}

// Compute aggregates meetings relative to now. Days are UTC calendar dates,
// labels run from six days ago to today.
func Compute(meetings []*entities.Meeting, now time.Time) Stats {
	today := truncateDay(now.UTC())

	s := Stats{
		TotalUploads: len(meetings),
		Labels:       make([]string, Days),
		Uploads:      make([]int, Days),
	}

	index := make(map[time.Time]int, Days)
	for i := 0; i < Days; i++ {
		day := today.AddDate(0, 0, i-(Days-1))
		s.Labels[i] = day.Format("Mon")
		index[day] = i
	}

	for _, m := range meetings {
		s.TotalWords += len(strings.Fields(m.Notes))
		if i, ok := index[truncateDay(m.CreatedAt.UTC())]; ok {
			s.Uploads[i]++
		}
	}

	return s
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
