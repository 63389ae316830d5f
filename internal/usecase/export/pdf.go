package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout in points, measured from the bottom of the page
const (
	pdfTitleX      = 200.0
	pdfTitleY      = 800.0
	pdfHeadingX    = 100.0
	pdfBodyX       = 120.0
	pdfAfterTitle  = 40.0
	pdfAfterSub    = 20.0
	pdfAfterHead   = 25.0
	pdfLineStep    = 15.0
	pdfAfterSect   = 20.0
	pdfWrapColumns = 80
)

// pdfText is one string drawn at a baseline position
type pdfText struct {
	X, Y  float64
	Style string
	Size  float64
	Text  string
}

// layoutPDF places every string of the document. Long lines are hard-wrapped
// every 80 characters. Content is not paginated; anything below the page edge
// is simply not visible.
func layoutPDF(doc Document) []pdfText {
	var ops []pdfText
	y := pdfTitleY

	ops = append(ops, pdfText{X: pdfTitleX, Y: y, Style: "B", Size: 20, Text: doc.Title})
	if doc.Subtitle != "" {
		y -= pdfAfterSub
		ops = append(ops, pdfText{X: pdfHeadingX, Y: y, Style: "I", Size: 10, Text: doc.Subtitle})
	}
	y -= pdfAfterTitle

	for _, s := range doc.Sections {
		ops = append(ops, pdfText{X: pdfHeadingX, Y: y, Style: "B", Size: 16, Text: s.Title})
		y -= pdfAfterHead

		for i, line := range s.Lines {
			for _, chunk := range hardWrap(prefixLine(s.Kind, i, line), pdfWrapColumns) {
				ops = append(ops, pdfText{X: pdfBodyX, Y: y, Size: 12, Text: chunk})
				y -= pdfLineStep
			}
		}
		y -= pdfAfterSect
	}
	return ops
}

func prefixLine(kind SectionKind, i int, line string) string {
	switch kind {
	case KindBullets:
		return "• " + line
	case KindNumbered:
		return fmt.Sprintf("%d. %s", i+1, line)
	default:
		return line
	}
}

// hardWrap cuts s into pieces of at most width runes, ignoring word boundaries
func hardWrap(s string, width int) []string {
	runes := []rune(s)
	var out []string
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// RenderPDF renders the document as a single A4 page
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("meeting-notes", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	for _, op := range layoutPDF(doc) {
		pdf.SetFont("Helvetica", op.Style, op.Size)
		pdf.Text(op.X, pageHeight-op.Y, tr(op.Text))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
