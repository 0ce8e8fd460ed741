// Package v1 holds the JSON wire types of the notes REST API.
package v1

import "time"

const (
	TypeNormal = "NORMAL"
	TypeBig    = "BIG"
)

type SourceFile struct {
	Name     string `json:"name"`
	FileType string `json:"fileType"`
}

type Note struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Type        string       `json:"type"`
	Tags        []string     `json:"tags"`
	Folder      string       `json:"folder"`
	SourceFiles []SourceFile `json:"sourceFiles"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// NoteFields is the body of create and update requests. Omitted fields are
// left untouched on update and defaulted on create.
type NoteFields struct {
	Title       *string       `json:"title,omitempty"`
	Content     *string       `json:"content,omitempty"`
	Type        *string       `json:"type,omitempty"`
	Tags        *[]string     `json:"tags,omitempty"`
	Folder      *string       `json:"folder,omitempty"`
	SourceFiles *[]SourceFile `json:"sourceFiles,omitempty"`
}

type UploadResponse struct {
	Content     string       `json:"content"`
	SourceFiles []SourceFile `json:"sourceFiles"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
