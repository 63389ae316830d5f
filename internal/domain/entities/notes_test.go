package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotes_Structured(t *testing.T) {
	n := ParseNotes(`{"title":"Sync","keyPoints":["a"]}`)

	require.True(t, n.IsStructured())
	assert.Equal(t, "Sync", n.Structured.Title)
	assert.Equal(t, []string{"a"}, n.Structured.KeyPoints)
	assert.NotNil(t, n.Structured.Decisions)
}

func TestParseNotes_Legacy(t *testing.T) {
	raw := "Abstract Summary\nWe met.\n\nKey Points\n. one"
	n := ParseNotes(raw)

	assert.Equal(t, NotesKindLegacy, n.Kind)
	assert.Equal(t, raw, n.Legacy)
}

func TestParseNotes_BrokenJSONIsLegacy(t *testing.T) {
	n := ParseNotes(`{"title": `)
	assert.Equal(t, NotesKindLegacy, n.Kind)
}

func TestNotes_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ParseNotes("plain text"))
	require.NoError(t, err)
	assert.JSONEq(t, `"plain text"`, string(b))

	b, err = json.Marshal(ParseNotes(`{"title":"T"}`))
	require.NoError(t, err)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &obj))
	assert.Equal(t, "T", obj["title"])
	assert.Equal(t, []interface{}{}, obj["actionItems"])
}

func TestStructuredNotes_Normalize(t *testing.T) {
	n := &StructuredNotes{}
	n.Normalize("2026-01-02")

	assert.Equal(t, DefaultNotesTitle, n.Title)
	assert.Equal(t, DefaultSentiment, n.Sentiment)
	assert.Equal(t, "2026-01-02", n.Date)

	raw, err := n.Encode()
	require.NoError(t, err)
	assert.Contains(t, raw, `"keyPoints":[]`)
}
