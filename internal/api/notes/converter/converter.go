package converter

import (
	"github.com/Faizanmoriani2/bignote/internal/entity"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

func ConvertNoteToV1(n entity.Note) v1.Note {
	return v1.Note{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Type:        string(n.Type),
		Tags:        nonNil(n.Tags),
		Folder:      n.Folder,
		SourceFiles: ConvertSourceFilesToV1(n.SourceFiles),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func ConvertNotesToV1(notes []entity.Note) []v1.Note {
	out := make([]v1.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, ConvertNoteToV1(n))
	}

	return out
}

func ConvertSourceFilesToV1(files []entity.SourceFile) []v1.SourceFile {
	out := make([]v1.SourceFile, 0, len(files))
	for _, f := range files {
		out = append(out, v1.SourceFile{Name: f.Name, FileType: f.FileType})
	}

	return out
}

func ConvertSourceFilesToEntity(files []v1.SourceFile) []entity.SourceFile {
	out := make([]entity.SourceFile, 0, len(files))
	for _, f := range files {
		out = append(out, entity.SourceFile{Name: f.Name, FileType: f.FileType})
	}

	return out
}

func ConvertFieldsToPatch(f v1.NoteFields) entity.NotePatch {
	p := entity.NotePatch{
		Title:   f.Title,
		Content: f.Content,
		Folder:  f.Folder,
	}

	if f.Type != nil {
		t := entity.NoteType(*f.Type)
		p.Type = &t
	}
	if f.Tags != nil {
		p.Tags, p.HasTags = nonNil(*f.Tags), true
	}
	if f.SourceFiles != nil {
		p.SourceFiles, p.HasSourceFiles = ConvertSourceFilesToEntity(*f.SourceFiles), true
	}

	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
