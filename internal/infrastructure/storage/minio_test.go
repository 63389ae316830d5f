package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinIOClient_Location(t *testing.T) {
	m := &MinIOClient{bucket: "meeting-notes"}
	assert.Equal(t, "s3://meeting-notes/uploads/a.wav", m.location(UploadObject("a.wav")))

	m.publicURL = "https://files.example.com"
	assert.Equal(t, "https://files.example.com/meeting-notes/outputs/notes_1.pdf", m.location(OutputObject("notes_1.pdf")))
}
