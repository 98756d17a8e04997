package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Letter describes a drafted advocacy letter for PDF rendering.
type Letter struct {
	Title      string
	Type       string
	Content    string
	LastEdited time.Time
}

// LetterPDF renders a letter draft as a printable A4 document.
func LetterPDF(l Letter) ([]byte, error) {
	if strings.TrimSpace(l.Content) == "" {
		return nil, fmt.Errorf("letter content is empty")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	if l.Title != "" {
		pdf.SetFont("Times", "B", 14)
		pdf.MultiCell(0, 8, l.Title, "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Times", "", 9)
	meta := l.Type
	if !l.LastEdited.IsZero() {
		if meta != "" {
			meta += " - "
		}
		meta += l.LastEdited.Format("January 2, 2006")
	}
	if meta != "" {
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 5, meta, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	pdf.SetFont("Times", "", 11)
	for _, para := range strings.Split(l.Content, "\n") {
		para = strings.TrimRight(para, " \t")
		if para == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 6, para, "", "L", false)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render letter pdf: %w", err)
	}
	return buf.Bytes(), nil
}
