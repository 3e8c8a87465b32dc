// Package extract converts PDF statement bytes into plain text for the
// parsing pipeline. It is the only place that reads PDF binary structure.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts page text from PDF bytes using an in-process reader.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the plain text of at most maxPages pages, one line per
// text row, pages separated by newlines. Pages that fail to decode are
// skipped; the rest of the document is still extracted.
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte, maxPages int) (text string, err error) {
	// The underlying reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		for _, row := range rows {
			writeRow(&sb, row.Content)
		}
	}

	return sb.String(), nil
}

// wordGap is the horizontal distance, in points, past which two text
// fragments on the same row are separate words rather than pieces of one
// word the reader split.
const wordGap = 1.0

// writeRow joins a row's text fragments into one line. Fragments are spaced
// by position so "NETFLIX" split into "NET" + "FLIX" stays glued while
// date, description and amount columns stay apart.
func writeRow(sb *strings.Builder, words []pdf.Text) {
	prevEnd := -1.0
	for _, word := range words {
		if prevEnd >= 0 && word.X-prevEnd > wordGap {
			sb.WriteByte(' ')
		}
		sb.WriteString(word.S)
		prevEnd = word.X + word.W
	}
	sb.WriteByte('\n')
}
