package comparator

// Kind classifies a DiffRecord.
type Kind string

const (
	Equal    Kind = "equal"
	Added    Kind = "added"
	Deleted  Kind = "deleted"
	Modified Kind = "modified"
)

// DiffRecord describes one aligned piece of the two documents. Records keep
// document order; OldContent is empty for Added, NewContent is empty for
// Deleted, and both are set (and identical) for Equal.
type DiffRecord struct {
	Kind       Kind   `json:"type"`
	OldContent string `json:"old_content"`
	NewContent string `json:"new_content"`
}
