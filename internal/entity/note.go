package entity

import (
	"fmt"
	"time"
)

const DefaultFolder = "General"

type NoteType string

const (
	NoteTypeNormal NoteType = "NORMAL"
	NoteTypeBig    NoteType = "BIG"
)

func (t NoteType) Valid() bool {
	return t == NoteTypeNormal || t == NoteTypeBig
}

type SourceFile struct {
	Name     string `json:"name"`
	FileType string `json:"fileType"`
}

type Note struct {
	ID          string
	Title       string
	Content     string
	Type        NoteType
	Tags        []string
	Folder      string
	SourceFiles []SourceFile
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotePatch carries the fields supplied by a create or update request.
// A nil field was not supplied.
type NotePatch struct {
	Title       *string
	Content     *string
	Type        *NoteType
	Tags        []string
	Folder      *string
	SourceFiles []SourceFile

	// Tags and SourceFiles are slices, so presence is tracked separately.
	HasTags        bool
	HasSourceFiles bool
}

// NewNote builds an unsaved note from the patch with defaults for every
// omitted field.
func NewNote(p NotePatch) (Note, error) {
	n := Note{
		Type:        NoteTypeNormal,
		Tags:        []string{},
		Folder:      DefaultFolder,
		SourceFiles: []SourceFile{},
	}

	if err := n.Apply(p); err != nil {
		return Note{}, err
	}

	return n, nil
}

// Apply merges the supplied fields of p over n.
func (n *Note) Apply(p NotePatch) error {
	if p.Type != nil && !p.Type.Valid() {
		return NewValidationError(fmt.Sprintf("type must be one of %s, %s, got %q",
			NoteTypeNormal, NoteTypeBig, *p.Type))
	}

	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.HasTags {
		n.Tags = nonNil(p.Tags)
	}
	if p.Folder != nil {
		n.Folder = *p.Folder
	}
	if p.HasSourceFiles {
		n.SourceFiles = nonNil(p.SourceFiles)
	}

	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
