package models

// Note is a short user-authored text entry. Notes are identified by their
// position in the per-user sequence; there is no edit feature.
type Note struct {
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
