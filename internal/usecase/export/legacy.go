package export

import (
	"strings"
	"unicode"
)

var legacyHeadings = []struct {
	title string
	kind  SectionKind
}{
	{HeadingSummary, KindParagraph},
	{HeadingKeyPoints, KindBullets},
	{HeadingActionItems, KindNumbered},
	{HeadingSentiment, KindParagraph},
}

// ParseLegacy splits section-delimited notes text into the four legacy sections.
//
// A line whose trimmed text starts with a heading opens that section, the
// first time the heading is seen. Following lines belong to it until the next
// heading; text before the first heading is ignored. Key points keep lines
// starting with "." and action items keep lines starting with a digit. A
// missing heading yields a section with no lines.
func ParseLegacy(text string) []Section {
	sections := make([]Section, len(legacyHeadings))
	opened := make([]bool, len(legacyHeadings))
	for i, h := range legacyHeadings {
		sections[i] = Section{Title: h.title, Kind: h.kind}
	}

	current := -1
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if i, rest, ok := matchHeading(line, opened); ok {
			opened[i] = true
			current = i
			line = rest
		}
		if current < 0 {
			continue
		}
		if body, ok := keepLine(sections[current].Kind, line); ok {
			sections[current].Lines = append(sections[current].Lines, body)
		}
	}
	return sections
}

// matchHeading reports which not-yet-opened heading the line starts, and any text after it
func matchHeading(line string, opened []bool) (int, string, bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), "#* ")
	for i, h := range legacyHeadings {
		if opened[i] || !strings.HasPrefix(trimmed, h.title) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(h.title):], "*: ")
		return i, rest, true
	}
	return 0, "", false
}

func keepLine(kind SectionKind, line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	switch kind {
	case KindBullets:
		if !strings.HasPrefix(line, ".") {
			return "", false
		}
		return strings.TrimSpace(strings.TrimLeft(line, ".")), true
	case KindNumbered:
		if !unicode.IsDigit(rune(line[0])) {
			return "", false
		}
		return stripNumber(line), true
	default:
		return line, true
	}
}

// stripNumber removes a "1." or "2)" prefix; rendering adds its own numbering
func stripNumber(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
