package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"rsc.io/pdf"
)

var (
	// ErrEncrypted reports a password-protected document.
	ErrEncrypted = errors.New("pdf is encrypted and cannot be processed")

	// ErrNoText reports a document with no extractable text, typically a
	// scanned or image-only PDF.
	ErrNoText = errors.New("no text could be extracted from pdf")
)

var (
	horizontalRun = regexp.MustCompile(`[ \t\f]+`)
	newlinePad    = regexp.MustCompile(` *\n *`)
	newlineRun    = regexp.MustCompile(`\n{3,}`)
)

// ExtractText reads every page of the PDF at path and returns its plain
// text normalized to the double-newline paragraph convention. Each page
// contributes one paragraph; layout inside a page is not reconstructed.
func ExtractText(path string) (text string, err error) {
	// rsc.io/pdf panics on some malformed content streams; surface that as
	// an ordinary error so one bad upload cannot take the process down.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse pdf %s: %v", path, r)
		}
	}()

	reader, err := pdf.Open(path)
	if err != nil {
		if strings.Contains(err.Error(), "encrypted") {
			return "", ErrEncrypted
		}
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		var buf bytes.Buffer
		for _, t := range page.Content().Text {
			buf.WriteString(t.S)
			buf.WriteString(" ")
		}
		if s := strings.TrimSpace(buf.String()); s != "" {
			pages = append(pages, s)
		}
	}

	cleaned := CleanText(strings.Join(pages, "\n\n"))
	if cleaned == "" {
		return "", ErrNoText
	}
	return cleaned, nil
}

// CleanText collapses run-on whitespace and normalizes paragraph breaks so
// downstream alignment sees the double-newline convention: horizontal
// whitespace runs become single spaces, three or more newlines become a
// paragraph break, and blank paragraphs are dropped. Case is preserved.
func CleanText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalRun.ReplaceAllString(text, " ")
	text = newlinePad.ReplaceAllString(text, "\n")
	text = newlineRun.ReplaceAllString(text, "\n\n")

	paragraphs := strings.Split(text, "\n\n")
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "\n\n")
}
