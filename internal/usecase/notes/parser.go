package notes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// StripCodeFence removes a markdown code fence (``` or ```json) around the model output
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, including any language tag
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "```"), "json")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// WrapCodeFence wraps JSON in a ```json fence the way chat models often do
func WrapCodeFence(s string) string {
	return "```json\n" + s + "\n```"
}

// Parse decodes model output into structured notes. The payload must be a JSON object.
func Parse(raw string) (*entities.StructuredNotes, error) {
	payload := StripCodeFence(raw)
	if !strings.HasPrefix(payload, "{") {
		return nil, fmt.Errorf("model output is not a JSON object")
	}

	var sn entities.StructuredNotes
	if err := json.Unmarshal([]byte(payload), &sn); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return &sn, nil
}
