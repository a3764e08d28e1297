package comparator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIdenticalDocuments(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph here.\n\nThird one."

	records := Compare(text, text)

	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, Equal, r.Kind, "record %d", i)
		assert.Equal(t, r.OldContent, r.NewContent, "record %d", i)
	}
	assert.Equal(t, "First paragraph here.", records[0].OldContent)
	assert.Equal(t, "Third one.", records[2].OldContent)
}

func TestCompareEmptyInputs(t *testing.T) {
	assert.Empty(t, Compare("", ""))
	assert.Empty(t, Compare("  \n\n \t ", ""))

	added := Compare("", "Only in the new document.")
	require.Len(t, added, 1)
	assert.Equal(t, Added, added[0].Kind)
	assert.Empty(t, added[0].OldContent)
	assert.Equal(t, "Only in the new document.", added[0].NewContent)

	deleted := Compare("Only in the old document.", "")
	require.Len(t, deleted, 1)
	assert.Equal(t, Deleted, deleted[0].Kind)
	assert.Equal(t, "Only in the old document.", deleted[0].OldContent)
	assert.Empty(t, deleted[0].NewContent)
}

func TestCompareSentenceRefinement(t *testing.T) {
	a := "The cat sat.\n\nDogs bark loudly."
	b := "The cat sat.\n\nDogs howl loudly. New paragraph here."

	records := Compare(a, b)

	require.Len(t, records, 3)
	assert.Equal(t, DiffRecord{Kind: Equal, OldContent: "The cat sat.", NewContent: "The cat sat."}, records[0])
	assert.Equal(t, DiffRecord{Kind: Modified, OldContent: "Dogs bark loudly.", NewContent: "Dogs howl loudly."}, records[1])
	assert.Equal(t, DiffRecord{Kind: Added, NewContent: "New paragraph here."}, records[2])
}

func TestCompareUnrelatedDocuments(t *testing.T) {
	records := Compare("A", "B")

	require.Len(t, records, 2)
	assert.Equal(t, DiffRecord{Kind: Deleted, OldContent: "A"}, records[0])
	assert.Equal(t, DiffRecord{Kind: Added, NewContent: "B"}, records[1])
	for _, r := range records {
		assert.NotEqual(t, Modified, r.Kind)
	}
}

func TestCompareParagraphInsertionAndDeletion(t *testing.T) {
	a := "Shared opening.\n\nDropped paragraph.\n\nShared closing."
	b := "Shared opening.\n\nShared closing.\n\nBrand new ending."

	records := Compare(a, b)

	require.Len(t, records, 4)
	assert.Equal(t, Equal, records[0].Kind)
	assert.Equal(t, Deleted, records[1].Kind)
	assert.Equal(t, "Dropped paragraph.", records[1].OldContent)
	assert.Equal(t, Equal, records[2].Kind)
	assert.Equal(t, Added, records[3].Kind)
	assert.Equal(t, "Brand new ending.", records[3].NewContent)
}

// Modified records carry flat sentence text; refinement never recurses into
// them a second time.
func TestCompareModifiedContentIsFlat(t *testing.T) {
	a := "One two three four. Five six seven eight."
	b := "One two three FOUR. Five six seven EIGHT."

	records := Compare(a, b)

	require.NotEmpty(t, records)
	for _, r := range records {
		if r.Kind == Modified {
			assert.NotContains(t, r.OldContent, "\n\n")
			assert.NotContains(t, r.NewContent, "\n\n")
		}
	}
}

// Every word of both inputs must appear exactly once, in order, across the
// record sequence.
func TestCompareCoverage(t *testing.T) {
	a := "Alpha beta gamma.\n\nDelta epsilon zeta. Eta theta iota.\n\nKappa lambda."
	b := "Alpha beta gamma.\n\nDelta epsilon zeta. Eta theta OMEGA.\n\nBrand new paragraph."

	records := Compare(a, b)

	var oldWords, newWords []string
	for _, r := range records {
		oldWords = append(oldWords, strings.Fields(r.OldContent)...)
		newWords = append(newWords, strings.Fields(r.NewContent)...)
	}
	assert.Equal(t, strings.Fields(strings.ReplaceAll(a, "\n\n", " ")), oldWords)
	assert.Equal(t, strings.Fields(strings.ReplaceAll(b, "\n\n", " ")), newWords)
}

func TestMatchOpcodesPartition(t *testing.T) {
	a := []string{"p1", "p2", "p3", "p4"}
	b := []string{"p1", "px", "p3", "py", "pz"}

	ops := matchOpcodes(a, b)

	require.NotEmpty(t, ops)
	i, j := 0, 0
	for _, op := range ops {
		assert.Equal(t, i, op.I1, "spans must be contiguous over a")
		assert.Equal(t, j, op.J1, "spans must be contiguous over b")
		if op.Tag == 'e' {
			assert.Equal(t, a[op.I1:op.I2], b[op.J1:op.J2])
		}
		i, j = op.I2, op.J2
	}
	assert.Equal(t, len(a), i)
	assert.Equal(t, len(b), j)
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\n\t\n\n ", nil},
		{"single", "Just one paragraph.", []string{"Just one paragraph."}},
		{"trims entries", "  first  \n\n  second  ", []string{"first", "second"}},
		{"drops blank entries", "first\n\n\n\nsecond", []string{"first", "second"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.in))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no boundary", "no punctuation at all", []string{"no punctuation at all"}},
		{"period", "First one. Second one.", []string{"First one.", "Second one."}},
		{"mixed punctuation", "Really! Is it? Yes.", []string{"Really!", "Is it?", "Yes."}},
		{"boundary across paragraphs", "Ends here.\n\nStarts here.", []string{"Ends here.", "Starts here."}},
		{"trailing period keeps one sentence", "No split here.", []string{"No split here."}},
		// Known heuristic limitation: abbreviations split too.
		{"abbreviation splits", "Dr. Smith agrees.", []string{"Dr.", "Smith agrees."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}
