package comparator

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

const paragraphSeparator = "\n\n"

// Sentences whose word-level match ratio clears this cutoff are reported as
// a modification; below it they are unrelated and reported as a deletion
// plus an addition.
const similarityCutoff = 0.5

// Compare aligns two documents paragraph by paragraph, then refines each
// replaced paragraph span once at sentence granularity. It is a pure
// function: no I/O, total over any pair of strings.
func Compare(text1, text2 string) []DiffRecord {
	paragraphs1 := SplitParagraphs(text1)
	paragraphs2 := SplitParagraphs(text2)

	var records []DiffRecord
	for _, op := range matchOpcodes(paragraphs1, paragraphs2) {
		switch op.Tag {
		case 'e':
			for _, p := range paragraphs1[op.I1:op.I2] {
				records = append(records, DiffRecord{Kind: Equal, OldContent: p, NewContent: p})
			}
		case 'r':
			oldBlock := strings.Join(paragraphs1[op.I1:op.I2], paragraphSeparator)
			newBlock := strings.Join(paragraphs2[op.J1:op.J2], paragraphSeparator)
			records = append(records, refineReplace(oldBlock, newBlock)...)
		case 'd':
			for _, p := range paragraphs1[op.I1:op.I2] {
				records = append(records, DiffRecord{Kind: Deleted, OldContent: p})
			}
		case 'i':
			for _, p := range paragraphs2[op.J1:op.J2] {
				records = append(records, DiffRecord{Kind: Added, NewContent: p})
			}
		}
	}
	return records
}

// refineReplace re-aligns a replaced paragraph span sentence by sentence.
// This is the second and last phase of the pipeline: records produced here
// carry flat sentence text and are never split again.
func refineReplace(oldBlock, newBlock string) []DiffRecord {
	oldSentences := SplitSentences(oldBlock)
	newSentences := SplitSentences(newBlock)

	var records []DiffRecord
	for _, op := range matchOpcodes(oldSentences, newSentences) {
		switch op.Tag {
		case 'e':
			for _, s := range oldSentences[op.I1:op.I2] {
				records = append(records, DiffRecord{Kind: Equal, OldContent: s, NewContent: s})
			}
		case 'r':
			records = append(records, pairSentences(oldSentences[op.I1:op.I2], newSentences[op.J1:op.J2])...)
		case 'd':
			records = append(records, DiffRecord{Kind: Deleted, OldContent: strings.Join(oldSentences[op.I1:op.I2], " ")})
		case 'i':
			records = append(records, DiffRecord{Kind: Added, NewContent: strings.Join(newSentences[op.J1:op.J2], " ")})
		}
	}
	return records
}

// pairSentences maps a sentence-level replace span to records. Sentences are
// paired positionally; a pair similar enough becomes one Modified record,
// an unrelated pair becomes Deleted plus Added, and whichever side runs long
// contributes one trailing Deleted or Added record.
func pairSentences(oldSpan, newSpan []string) []DiffRecord {
	var records []DiffRecord
	n := len(oldSpan)
	if len(newSpan) < n {
		n = len(newSpan)
	}
	for i := 0; i < n; i++ {
		if similarity(oldSpan[i], newSpan[i]) >= similarityCutoff {
			records = append(records, DiffRecord{Kind: Modified, OldContent: oldSpan[i], NewContent: newSpan[i]})
		} else {
			records = append(records,
				DiffRecord{Kind: Deleted, OldContent: oldSpan[i]},
				DiffRecord{Kind: Added, NewContent: newSpan[i]})
		}
	}
	if len(oldSpan) > n {
		records = append(records, DiffRecord{Kind: Deleted, OldContent: strings.Join(oldSpan[n:], " ")})
	}
	if len(newSpan) > n {
		records = append(records, DiffRecord{Kind: Added, NewContent: strings.Join(newSpan[n:], " ")})
	}
	return records
}

// similarity is the word-level match ratio of two sentences, in [0, 1].
func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Fields(a), strings.Fields(b)).Ratio()
}

// matchOpcodes wraps the sequence matcher so the alignment primitive can be
// tested apart from the record mapping.
func matchOpcodes(a, b []string) []difflib.OpCode {
	return difflib.NewMatcher(a, b).GetOpCodes()
}

// SplitParagraphs splits a document on the double-newline convention. Each
// paragraph is trimmed and whitespace-only entries are dropped, so inputs
// that skipped the extractor's normalization still align cleanly.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, paragraphSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// SplitSentences splits text after '.', '!' or '?' followed by whitespace,
// consuming the whitespace run. The boundary rule is a simple heuristic:
// abbreviations and decimal numbers mis-split, and that granularity is kept
// because reports are built on it.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); {
		if isBoundary(runes[i]) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(runes) {
		if tail := string(runes[start:]); strings.TrimSpace(tail) != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}

func isBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
