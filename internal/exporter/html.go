// Package exporter turns a stored comparison result into downloadable
// report documents.
package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gautamprafful007/PDF-Comparator/internal/renderer"
	"github.com/gautamprafful007/PDF-Comparator/internal/report"
)

const timestampFormat = "20060102_150405"

// HTML renders a self-contained comparison report document and a filename
// for it.
func HTML(res report.Result) ([]byte, string) {
	now := time.Now()
	s := res.Summary

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>PDF Comparison Report</title>\n")
	b.WriteString("<style>" + reportCSS + "</style>\n</head>\n<body>\n")

	b.WriteString("<div class=\"header\">\n<h1>PDF Comparison Report</h1>\n")
	fmt.Fprintf(&b, "<div class=\"meta-info\">Generated on: %s</div>\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "<div class=\"meta-info\">Files compared: %s vs %s</div>\n",
		escape(res.OldName), escape(res.NewName))
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"summary\">\n<h2>Summary of Changes</h2>\n<div class=\"stats\">\n")
	statBox(&b, "Additions", "color-additions", s.Additions.Count, fmt.Sprintf("%d words", s.Additions.Words))
	statBox(&b, "Deletions", "color-deletions", s.Deletions.Count, fmt.Sprintf("%d words", s.Deletions.Words))
	statBox(&b, "Modifications", "color-modifications", s.Modifications.Count,
		fmt.Sprintf("%d word difference", s.Modifications.WordsNew-s.Modifications.WordsOld))
	statBox(&b, "Unchanged", "", s.Unchanged.Count, "sections")
	b.WriteString("</div>\n")

	b.WriteString(`<div class="legend">
<div class="legend-item"><div class="color-box bg-green"></div><span>Added Content</span></div>
<div class="legend-item"><div class="color-box bg-red"></div><span>Removed Content</span></div>
<div class="legend-item"><div class="color-box bg-yellow"></div><span>Modified Content</span></div>
</div>
</div>
`)

	b.WriteString("<h2 class=\"details-title\">Detailed Differences</h2>\n<div class=\"details\">\n")
	fmt.Fprintf(&b, "<div class=\"document\">\n<h3>First PDF</h3>\n%s\n</div>\n",
		renderer.Highlight(res.Records, renderer.SideOld))
	fmt.Fprintf(&b, "<div class=\"document\">\n<h3>Second PDF</h3>\n%s\n</div>\n",
		renderer.Highlight(res.Records, renderer.SideNew))
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"footer\"><p>Generated by PDF Comparison Tool</p></div>\n</body>\n</html>\n")

	filename := fmt.Sprintf("comparison_report_%s.html", now.Format(timestampFormat))
	return []byte(b.String()), filename
}

func statBox(b *strings.Builder, label, colorClass string, value int, sub string) {
	valueClass := "stat-value"
	if colorClass != "" {
		valueClass += " " + colorClass
	}
	fmt.Fprintf(b, `<div class="stat-box">
<div class="stat-label">%s</div>
<div class="%s">%d</div>
<div class="stat-label">%s</div>
</div>
`, label, valueClass, value, sub)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

const reportCSS = `
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 1200px; margin: 0 auto; padding: 20px; }
.header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 1px solid #eee; }
.header h1 { color: #FF4081; margin-bottom: 10px; }
.meta-info { color: #666; font-size: 14px; margin-bottom: 5px; }
.summary { background-color: #f9f9f9; border-radius: 15px; padding: 20px; margin-bottom: 30px; box-shadow: 0 4px 8px rgba(0,0,0,0.05); }
.summary h2 { color: #553BFF; text-align: center; margin-top: 0; }
.stats { display: flex; justify-content: space-between; flex-wrap: wrap; }
.stat-box { flex: 1; min-width: 150px; background: white; border-radius: 8px; padding: 15px; margin: 10px; box-shadow: 0 2px 4px rgba(0,0,0,0.05); text-align: center; }
.stat-value { font-size: 24px; font-weight: bold; margin: 10px 0; }
.stat-label { color: #666; font-size: 14px; }
.color-additions { color: #4CAF50; }
.color-deletions { color: #F44336; }
.color-modifications { color: #FFC107; }
.legend { display: flex; justify-content: center; margin: 20px 0; flex-wrap: wrap; }
.legend-item { margin: 10px; display: flex; align-items: center; }
.color-box { width: 20px; height: 20px; margin-right: 5px; border-radius: 4px; }
.bg-green { background-color: #CCFFCC; }
.bg-red { background-color: #FFCCCC; }
.bg-yellow { background-color: #FFFFCC; }
.details-title { text-align: center; color: #553BFF; }
.details { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-top: 30px; }
.document { border: 1px solid #ddd; border-radius: 8px; padding: 20px; background-color: #fcfcfc; }
.document h3 { color: #0CA4A5; text-align: center; margin-top: 0; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 1px solid #eee; }
.footer { margin-top: 50px; text-align: center; font-size: 12px; color: #999; padding-top: 20px; border-top: 1px solid #eee; }
@media print { body { padding: 0; font-size: 12px; } .summary, .document { break-inside: avoid; } }
`
