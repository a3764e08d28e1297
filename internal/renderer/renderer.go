// Package renderer maps semantic diff records to highlighted HTML. All
// presentation state (colors, anchor counters) lives here; the comparator
// never emits markup.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
)

// Side selects which document's content a rendering shows.
type Side string

const (
	SideOld Side = "old"
	SideNew Side = "new"
)

const (
	paragraphStyle   = "margin-bottom: 8px; line-height: 1.5;"
	placeholderStyle = "margin-bottom: 8px; line-height: 1.5; background-color: #F8F8F8; color: #888888; padding: 10px; border-radius: 5px; font-style: italic;"

	addedSpanStyle    = "background-color: #CCFFCC; padding: 2px 0; border-radius: 3px;"
	deletedSpanStyle  = "background-color: #FFCCCC; padding: 2px 0; border-radius: 3px;"
	modifiedSpanStyle = "background-color: #FFFFCC; padding: 2px 0; border-radius: 3px;"

	placeholderOldSide = "[Content only in second document]"
	placeholderNewSide = "[Content only in first document]"
)

// sanitizer escapes markup-significant characters so text lifted from a PDF
// can never render as HTML or CSS. Braces are included to neutralize
// embedded style blocks.
var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

// Highlight renders one side of a record sequence as an HTML fragment: one
// paragraph per record, color-coded by kind, with a placeholder where the
// chosen side has no corresponding content. Anchor IDs are numbered per
// call, never process-wide.
func Highlight(records []comparator.DiffRecord, side Side) string {
	var b strings.Builder
	var additions, deletions, modifications int

	for _, r := range records {
		switch {
		case r.Kind == comparator.Equal && side == SideOld:
			paragraph(&b, "", "", r.OldContent)
		case r.Kind == comparator.Equal:
			paragraph(&b, "", "", r.NewContent)

		case r.Kind == comparator.Added && side == SideOld:
			placeholder(&b, placeholderOldSide)
		case r.Kind == comparator.Added:
			additions++
			paragraph(&b, fmt.Sprintf("%s-addition-%d", side, additions), addedSpanStyle, r.NewContent)

		case r.Kind == comparator.Deleted && side == SideNew:
			placeholder(&b, placeholderNewSide)
		case r.Kind == comparator.Deleted:
			deletions++
			paragraph(&b, fmt.Sprintf("%s-deletion-%d", side, deletions), deletedSpanStyle, r.OldContent)

		case r.Kind == comparator.Modified && side == SideOld:
			modifications++
			paragraph(&b, fmt.Sprintf("%s-modification-%d", side, modifications), modifiedSpanStyle, r.OldContent)
		case r.Kind == comparator.Modified:
			modifications++
			paragraph(&b, fmt.Sprintf("%s-modification-%d", side, modifications), modifiedSpanStyle, r.NewContent)
		}
	}
	return b.String()
}

func paragraph(b *strings.Builder, id, spanStyle, content string) {
	b.WriteString("<p")
	if id != "" {
		fmt.Fprintf(b, " id='%s'", id)
	}
	fmt.Fprintf(b, " style='%s'>", paragraphStyle)
	if spanStyle != "" {
		fmt.Fprintf(b, "<span style='%s'>%s</span>", spanStyle, sanitizer.Replace(content))
	} else {
		b.WriteString(sanitizer.Replace(content))
	}
	b.WriteString("</p>")
}

func placeholder(b *strings.Builder, text string) {
	fmt.Fprintf(b, "<p style='%s'>%s</p>", placeholderStyle, text)
}

// CountChanges tallies additions, deletions and modifications in a record
// sequence, for labeling exported reports.
func CountChanges(records []comparator.DiffRecord) (additions, deletions, modifications int) {
	for _, r := range records {
		switch r.Kind {
		case comparator.Added:
			additions++
		case comparator.Deleted:
			deletions++
		case comparator.Modified:
			modifications++
		}
	}
	return additions, deletions, modifications
}
