package comparator

import "strings"

// ChangeStats aggregates one change kind.
type ChangeStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Words      int     `json:"words"`
}

// ModificationStats tracks word totals for both sides of modified records.
type ModificationStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	WordsOld   int     `json:"words_old"`
	WordsNew   int     `json:"words_new"`
}

// UnchangedStats counts equal records; no word accounting is kept for them.
type UnchangedStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary aggregates a diff record sequence. The four counts sum to
// TotalElements and each percentage is derived from its count, 0 when the
// sequence is empty.
type Summary struct {
	TotalElements int               `json:"total_elements"`
	Additions     ChangeStats       `json:"additions"`
	Deletions     ChangeStats       `json:"deletions"`
	Modifications ModificationStats `json:"modifications"`
	Unchanged     UnchangedStats    `json:"unchanged"`
}

// Summarize folds a record sequence into per-kind counts, word totals and
// percentages in a single pass.
func Summarize(records []DiffRecord) Summary {
	var s Summary
	for _, r := range records {
		switch r.Kind {
		case Added:
			s.Additions.Count++
			s.Additions.Words += wordCount(r.NewContent)
		case Deleted:
			s.Deletions.Count++
			s.Deletions.Words += wordCount(r.OldContent)
		case Modified:
			s.Modifications.Count++
			s.Modifications.WordsOld += wordCount(r.OldContent)
			s.Modifications.WordsNew += wordCount(r.NewContent)
		case Equal:
			s.Unchanged.Count++
		}
	}

	s.TotalElements = s.Additions.Count + s.Deletions.Count + s.Modifications.Count + s.Unchanged.Count
	if s.TotalElements == 0 {
		return s
	}
	total := float64(s.TotalElements)
	s.Additions.Percentage = float64(s.Additions.Count) / total * 100
	s.Deletions.Percentage = float64(s.Deletions.Count) / total * 100
	s.Modifications.Percentage = float64(s.Modifications.Count) / total * 100
	s.Unchanged.Percentage = float64(s.Unchanged.Count) / total * 100
	return s
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
