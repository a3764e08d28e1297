package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
)

var sampleRecords = []comparator.DiffRecord{
	{Kind: comparator.Equal, OldContent: "Same text.", NewContent: "Same text."},
	{Kind: comparator.Deleted, OldContent: "Gone now."},
	{Kind: comparator.Modified, OldContent: "Was this.", NewContent: "Is this."},
	{Kind: comparator.Added, NewContent: "Fresh text."},
}

func TestHighlightOldSide(t *testing.T) {
	out := Highlight(sampleRecords, SideOld)

	assert.Contains(t, out, "Same text.")
	assert.Contains(t, out, "id='old-deletion-1'")
	assert.Contains(t, out, "Gone now.")
	assert.Contains(t, out, "id='old-modification-1'")
	assert.Contains(t, out, "Was this.")
	// The old side never shows new-only content, only its placeholder.
	assert.NotContains(t, out, "Fresh text.")
	assert.Contains(t, out, "[Content only in second document]")
	assert.NotContains(t, out, "Is this.")
}

func TestHighlightNewSide(t *testing.T) {
	out := Highlight(sampleRecords, SideNew)

	assert.Contains(t, out, "Same text.")
	assert.Contains(t, out, "id='new-addition-1'")
	assert.Contains(t, out, "Fresh text.")
	assert.Contains(t, out, "id='new-modification-1'")
	assert.Contains(t, out, "Is this.")
	assert.NotContains(t, out, "Gone now.")
	assert.Contains(t, out, "[Content only in first document]")
}

func TestHighlightAnchorsRestartPerCall(t *testing.T) {
	records := []comparator.DiffRecord{
		{Kind: comparator.Added, NewContent: "one"},
		{Kind: comparator.Added, NewContent: "two"},
	}

	first := Highlight(records, SideNew)
	second := Highlight(records, SideNew)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, "id='new-addition-1'"))
	assert.Equal(t, 1, strings.Count(first, "id='new-addition-2'"))
}

func TestHighlightSanitizesContent(t *testing.T) {
	records := []comparator.DiffRecord{
		{Kind: comparator.Added, NewContent: "<script>alert(1)</script> {color: red}"},
	}

	out := Highlight(records, SideNew)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&#123;color: red&#125;")
}

func TestCountChanges(t *testing.T) {
	additions, deletions, modifications := CountChanges(sampleRecords)

	assert.Equal(t, 1, additions)
	assert.Equal(t, 1, deletions)
	assert.Equal(t, 1, modifications)
}
