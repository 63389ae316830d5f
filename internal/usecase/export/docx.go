package export

import (
	"bytes"
	"fmt"

	"github.com/gomutex/godocx"
)

// Paragraph styles from the default Word template
const (
	styleSubtitle   = "Subtitle"
	styleListBullet = "List Bullet"
	styleListNumber = "List Number"
)

// RenderDOCX renders the document as a Word file
func RenderDOCX(doc Document) ([]byte, error) {
	d, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	if _, err := d.AddHeading(doc.Title, 0); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	if doc.Subtitle != "" {
		d.AddParagraph(doc.Subtitle).Style(styleSubtitle)
	}

	for _, s := range doc.Sections {
		if _, err := d.AddHeading(s.Title, 1); err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
		for _, line := range s.Lines {
			p := d.AddParagraph(line)
			switch s.Kind {
			case KindBullets:
				p.Style(styleListBullet)
			case KindNumbered:
				p.Style(styleListNumber)
			}
		}
	}

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}
