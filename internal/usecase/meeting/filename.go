package meeting

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded name to a safe ASCII file name.
// Accents are decomposed and dropped, path separators and whitespace become
// underscores, and leading or trailing dots and underscores are removed.
func SanitizeFilename(name string) string {
	ascii := toASCII(norm.NFKD.String(name))
	ascii = strings.NewReplacer("/", " ", `\`, " ").Replace(ascii)
	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// StoredFilename sanitizes name and substitutes a generated one when nothing
// usable is left. The extension is kept when it survives sanitization.
func StoredFilename(name string) string {
	safe := SanitizeFilename(name)
	ext := SanitizeFilename(filepath.Ext(name))

	if safe != "" && safe != ext {
		return safe
	}

	generated := "upload-" + uuid.NewString()
	if ext != "" {
		generated += "." + ext
	}
	return generated
}

func toASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
