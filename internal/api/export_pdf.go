package api

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/tidelog/tidelog/internal/services"
)

// A tiny single-font PDF writer: enough for a paginated text table, no
// compression, no images.
const (
	pdfPageWidth  = 612.0
	pdfPageHeight = 792.0

	pdfMargin       = 50.0
	pdfTitleSize    = 14.0
	pdfSubtitleSize = 10.0
	pdfTableSize    = 8.0
	pdfRowHeight    = 12.0

	pdfMaxCellChars = 30
)

type pdfPage struct {
	content bytes.Buffer
}

func (page *pdfPage) drawText(x float64, y float64, size float64, bold bool, text string) {
	font := "/F1"
	if bold {
		font = "/F2"
	}
	fmt.Fprintf(&page.content, "BT %s %.1f Tf %.2f %.2f Td (%s) Tj ET\n",
		font, size, x, y, escapePDFText(text))
}

func escapePDFText(text string) string {
	var output strings.Builder
	for _, character := range text {
		switch character {
		case '\\', '(', ')':
			output.WriteByte('\\')
			output.WriteRune(character)
		default:
			if character < 32 || character > 126 {
				output.WriteByte('?')
			} else {
				output.WriteRune(character)
			}
		}
	}
	return output.String()
}

func truncateCell(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max-2] + ".."
}

func buildExportPDF(table services.ExportTable, from time.Time, to time.Time) []byte {
	pages := []*pdfPage{}
	page := &pdfPage{}
	pages = append(pages, page)

	y := pdfPageHeight - pdfMargin
	page.drawText(pdfMargin, y, pdfTitleSize, true, "Tidelog - Doctor Report")
	y -= pdfTitleSize + 8

	rangeLine := fmt.Sprintf("Date range: %s - %s", services.DayKey(from), services.DayKey(to))
	page.drawText(pdfMargin, y, pdfSubtitleSize, false, rangeLine)
	y -= pdfSubtitleSize + 16

	tableWidth := pdfPageWidth - 2*pdfMargin
	columnWidth := tableWidth
	if len(table.Columns) > 0 {
		columnWidth = tableWidth / float64(len(table.Columns))
	}

	drawHeader := func(target *pdfPage, headerY float64) {
		for index, column := range table.Columns {
			x := pdfMargin + float64(index)*columnWidth + 2
			target.drawText(x, headerY, pdfTableSize, true, truncateCell(column.Label, pdfMaxCellChars))
		}
	}

	drawHeader(page, y)
	y -= pdfRowHeight

	for _, row := range table.Rows {
		if y < pdfMargin+pdfRowHeight {
			page = &pdfPage{}
			pages = append(pages, page)
			y = pdfPageHeight - pdfMargin
			drawHeader(page, y)
			y -= pdfRowHeight
		}
		for index, column := range table.Columns {
			x := pdfMargin + float64(index)*columnWidth + 2
			page.drawText(x, y, pdfTableSize, false, truncateCell(column.Value(row), pdfMaxCellChars))
		}
		y -= pdfRowHeight
	}

	return assemblePDF(pages)
}

// assemblePDF lays the document out as catalog, page tree, two standard
// fonts, then a page and content stream pair per page, followed by the
// cross-reference table.
func assemblePDF(pages []*pdfPage) []byte {
	var output bytes.Buffer
	offsets := []int{}

	writeObject := func(body string) {
		offsets = append(offsets, output.Len())
		fmt.Fprintf(&output, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	output.WriteString("%PDF-1.4\n")

	kids := make([]string, 0, len(pages))
	for index := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+index*2))
	}

	writeObject("<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	writeObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	writeObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>")

	for index, page := range pages {
		contentRef := 6 + index*2
		writeObject(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.0f %.0f] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			pdfPageWidth, pdfPageHeight, contentRef))
		writeObject(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream",
			page.content.Len(), page.content.String()))
	}

	xrefOffset := output.Len()
	fmt.Fprintf(&output, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, offset := range offsets {
		fmt.Fprintf(&output, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&output, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	return output.Bytes()
}
