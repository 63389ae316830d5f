package export

import (
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Section headings, in rendering order
const (
	HeadingSummary     = "Abstract Summary"
	HeadingKeyPoints   = "Key Points"
	HeadingActionItems = "Action Items"
	HeadingDecisions   = "Decisions"
	HeadingSentiment   = "Sentiment"
)

// DocumentTitle heads every exported document
const DocumentTitle = "Meeting Notes"

// SectionKind selects how section lines are laid out
type SectionKind int

const (
	KindParagraph SectionKind = iota
	KindBullets
	KindNumbered
)

// Section is one heading with its content lines
type Section struct {
	Title string
	Kind  SectionKind
	Lines []string
}

// Document is the format-independent content of an export
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

// BuildDocument lays out notes as sections. Empty sections are omitted.
func BuildDocument(n entities.Notes) Document {
	if n.IsStructured() {
		return fromStructured(n.Structured)
	}
	return Document{Title: DocumentTitle, Sections: nonEmpty(ParseLegacy(n.Legacy))}
}

func fromStructured(sn *entities.StructuredNotes) Document {
	doc := Document{Title: DocumentTitle}
	if sn.Title != "" {
		doc.Title = sn.Title
	}

	var sub []string
	if sn.Date != "" {
		sub = append(sub, sn.Date)
	}
	if len(sn.Participants) > 0 {
		sub = append(sub, "Participants: "+strings.Join(sn.Participants, ", "))
	}
	doc.Subtitle = strings.Join(sub, " | ")

	sentiment := []string{sn.Sentiment, sn.SentimentInsights}

	doc.Sections = nonEmpty([]Section{
		{Title: HeadingSummary, Kind: KindParagraph, Lines: []string{sn.Description, sn.ExecutiveSummary}},
		{Title: HeadingKeyPoints, Kind: KindBullets, Lines: sn.KeyPoints},
		{Title: HeadingActionItems, Kind: KindNumbered, Lines: sn.ActionItems},
		{Title: HeadingDecisions, Kind: KindBullets, Lines: sn.Decisions},
		{Title: HeadingSentiment, Kind: KindParagraph, Lines: sentiment},
	})
	return doc
}

// nonEmpty drops blank lines and then sections without lines
func nonEmpty(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		lines := make([]string, 0, len(s.Lines))
		for _, l := range s.Lines {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}
		s.Lines = lines
		out = append(out, s)
	}
	return out
}
