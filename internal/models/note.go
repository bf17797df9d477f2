package models

// NoteType distinguishes free-form notes from todo lists.
type NoteType string

const (
	NoteNormal NoteType = "normal"
	NoteTodo   NoteType = "todo"
)

// SmartNote is a standalone note outside the weekly grid.
type SmartNote struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Type      NoteType `json:"type"`
	Tags      []string `json:"tags,omitempty"`
	Color     string   `json:"color,omitempty"`
	Pinned    bool     `json:"pinned"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}
