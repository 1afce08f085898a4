package draft

import "time"

type Type string

const (
	TypeText   Type = "TEXT"
	TypeScript Type = "SCRIPT"
)

func (t Type) IsValid() bool {
	return t == TypeText || t == TypeScript
}

// DraftNote is a free-form writing artifact: plain text or a numbered script.
type DraftNote struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        Type         `json:"type"`
	Content     string       `json:"content"`
	ScriptLines []ScriptLine `json:"scriptLines"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type ScriptLine struct {
	ID          string  `json:"id"`
	Scene       string  `json:"scene"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
}

// Attachment keeps metadata only; file contents live in external storage.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}
