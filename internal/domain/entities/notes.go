package entities

import (
	"encoding/json"
	"strings"
)

// Defaults applied to notes the model left incomplete
const (
	DefaultNotesTitle = "Meeting Notes"
	DefaultSentiment  = "Neutral"
	DateLayout        = "2006-01-02"
)

// StructuredNotes is the JSON document produced by the notes model
type StructuredNotes struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Date              string   `json:"date"`
	Participants      []string `json:"participants"`
	ExecutiveSummary  string   `json:"executiveSummary"`
	KeyPoints         []string `json:"keyPoints"`
	ActionItems       []string `json:"actionItems"`
	Decisions         []string `json:"decisions"`
	Sentiment         string   `json:"sentiment"`
	SentimentInsights string   `json:"sentimentInsights"`
}

// Normalize fills missing fields so lists serialize as arrays
func (n *StructuredNotes) Normalize(today string) {
	if n.Title == "" {
		n.Title = DefaultNotesTitle
	}
	if n.Date == "" {
		n.Date = today
	}
	if n.Sentiment == "" {
		n.Sentiment = DefaultSentiment
	}
	if n.Participants == nil {
		n.Participants = []string{}
	}
	if n.KeyPoints == nil {
		n.KeyPoints = []string{}
	}
	if n.ActionItems == nil {
		n.ActionItems = []string{}
	}
	if n.Decisions == nil {
		n.Decisions = []string{}
	}
}

// Encode serializes the notes for the notes column
func (n *StructuredNotes) Encode() (string, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NotesKind tells which representation a stored notes column holds
type NotesKind string

const (
	NotesKindLegacy     NotesKind = "legacy"
	NotesKindStructured NotesKind = "structured"
)

// Notes is the resolved form of a notes column: either legacy
// section-delimited text or a structured document.
type Notes struct {
	Kind       NotesKind
	Legacy     string
	Structured *StructuredNotes
}

// ParseNotes resolves a raw notes column. Anything that is not a JSON object
// is treated as legacy text.
func ParseNotes(raw string) Notes {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var sn StructuredNotes
		if err := json.Unmarshal([]byte(trimmed), &sn); err == nil {
			if sn.Participants == nil {
				sn.Participants = []string{}
			}
			if sn.KeyPoints == nil {
				sn.KeyPoints = []string{}
			}
			if sn.ActionItems == nil {
				sn.ActionItems = []string{}
			}
			if sn.Decisions == nil {
				sn.Decisions = []string{}
			}
			return Notes{Kind: NotesKindStructured, Structured: &sn}
		}
	}
	return Notes{Kind: NotesKindLegacy, Legacy: raw}
}

// IsStructured reports whether the notes hold a structured document
func (n Notes) IsStructured() bool {
	return n.Kind == NotesKindStructured && n.Structured != nil
}

// MarshalJSON emits the structured object or the legacy string
func (n Notes) MarshalJSON() ([]byte, error) {
	if n.IsStructured() {
		return json.Marshal(n.Structured)
	}
	return json.Marshal(n.Legacy)
}
