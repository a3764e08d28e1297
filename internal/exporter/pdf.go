package exporter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
	"github.com/gautamprafful007/PDF-Comparator/internal/report"
)

// PDF renders the comparison report as a native PDF document. The layout
// mirrors the HTML report: header, summary table, then every record in
// document order with the same color coding.
func PDF(res report.Result) ([]byte, string, error) {
	now := time.Now()
	s := res.Summary

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("PDF Comparison Report", false)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.SetTextColor(255, 64, 129)
	doc.CellFormat(0, 12, "PDF Comparison Report", "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(0, 6, "Generated on: "+now.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Files compared: %s vs %s", res.OldName, res.NewName)), "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(85, 59, 255)
	doc.CellFormat(0, 10, "Summary of Changes", "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 11)
	doc.SetTextColor(51, 51, 51)
	summaryRow(doc, "Additions", fmt.Sprintf("%d (%d words)", s.Additions.Count, s.Additions.Words))
	summaryRow(doc, "Deletions", fmt.Sprintf("%d (%d words)", s.Deletions.Count, s.Deletions.Words))
	summaryRow(doc, "Modifications", fmt.Sprintf("%d (%d word difference)",
		s.Modifications.Count, s.Modifications.WordsNew-s.Modifications.WordsOld))
	summaryRow(doc, "Unchanged", fmt.Sprintf("%d sections", s.Unchanged.Count))
	summaryRow(doc, "Total elements", fmt.Sprintf("%d", s.TotalElements))
	doc.Ln(6)

	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(85, 59, 255)
	doc.CellFormat(0, 10, "Detailed Differences", "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(51, 51, 51)
	for _, r := range res.Records {
		switch r.Kind {
		case comparator.Equal:
			doc.SetFillColor(255, 255, 255)
			doc.MultiCell(0, 5, tr(r.OldContent), "", "L", false)
		case comparator.Added:
			doc.SetFillColor(204, 255, 204)
			doc.MultiCell(0, 5, tr("+ "+r.NewContent), "", "L", true)
		case comparator.Deleted:
			doc.SetFillColor(255, 204, 204)
			doc.MultiCell(0, 5, tr("- "+r.OldContent), "", "L", true)
		case comparator.Modified:
			doc.SetFillColor(255, 255, 204)
			doc.MultiCell(0, 5, tr("old: "+r.OldContent), "", "L", true)
			doc.MultiCell(0, 5, tr("new: "+r.NewContent), "", "L", true)
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to generate pdf report: %w", err)
	}
	filename := fmt.Sprintf("comparison_report_%s.pdf", now.Format(timestampFormat))
	return buf.Bytes(), filename, nil
}

func summaryRow(doc *gofpdf.Fpdf, label, value string) {
	doc.CellFormat(50, 7, label, "1", 0, "L", false, 0, "")
	doc.CellFormat(0, 7, value, "1", 1, "L", false, 0, "")
}
