package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func TestToMeetingResponse_NotesShape(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	legacy := ToMeetingResponse(&entities.Meeting{ID: 1, Filename: "a.wav", Notes: "Abstract Summary\nhi", CreatedAt: created})
	structured := ToMeetingResponse(&entities.Meeting{ID: 2, Filename: "b.wav", Notes: `{"title":"T"}`, CreatedAt: created})

	b, err := json.Marshal([]interface{}{legacy, structured})
	require.NoError(t, err)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, "legacy", out[0]["notes_format"])
	assert.Equal(t, "Abstract Summary\nhi", out[0]["notes"])
	assert.Equal(t, "structured", out[1]["notes_format"])
	assert.Equal(t, "T", out[1]["notes"].(map[string]interface{})["title"])
	assert.Equal(t, "2026-10-01T08:00:00Z", out[1]["created_at"])
}

func TestToMeetingListResponse_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(ToMeetingListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
