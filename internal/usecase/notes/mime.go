package notes

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMimeType is used when neither the name nor the content identify the audio
const DefaultMimeType = "audio/wav"

var audioExtensions = map[string]string{
	".aac":  "audio/aac",
	".aif":  "audio/aiff",
	".aiff": "audio/aiff",
	".amr":  "audio/amr",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".mpeg": "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wav":  "audio/wav",
	".weba": "audio/webm",
	".webm": "audio/webm",
}

// DetectMimeType guesses the audio mime type: extension first, then content sniffing
func DetectMimeType(filename string, data []byte) string {
	if mt, ok := audioExtensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return mt
	}

	if len(data) > 0 {
		detected := mimetype.Detect(data)
		mt := strings.SplitN(detected.String(), ";", 2)[0]
		if strings.HasPrefix(mt, "audio/") || strings.HasPrefix(mt, "video/") {
			return mt
		}
	}
	return DefaultMimeType
}
