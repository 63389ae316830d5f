package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMimeType_Extension(t *testing.T) {
	assert.Equal(t, "audio/mpeg", DetectMimeType("call.MP3", nil))
	assert.Equal(t, "audio/mp4", DetectMimeType("call.m4a", nil))
	assert.Equal(t, "audio/wav", DetectMimeType("call.wav", []byte("ID3")))
}

func TestDetectMimeType_Sniffing(t *testing.T) {
	id3 := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 64)...)
	assert.Equal(t, "audio/mpeg", DetectMimeType("recording", id3))
}

func TestDetectMimeType_Default(t *testing.T) {
	assert.Equal(t, DefaultMimeType, DetectMimeType("notes.txt", []byte("hello world")))
	assert.Equal(t, DefaultMimeType, DetectMimeType("blob", nil))
}
