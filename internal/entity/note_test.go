package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteDefaults(t *testing.T) {
	n, err := NewNote(NotePatch{})
	require.NoError(t, err)

	assert.Equal(t, NoteTypeNormal, n.Type)
	assert.Equal(t, DefaultFolder, n.Folder)
	assert.NotNil(t, n.Tags)
	assert.NotNil(t, n.SourceFiles)
}

func TestApplyKeepsOmittedFields(t *testing.T) {
	n := Note{Title: "t", Content: "c", Tags: []string{"x"}, Folder: "f", Type: NoteTypeBig}
	title := "new"

	require.NoError(t, n.Apply(NotePatch{Title: &title}))

	assert.Equal(t, Note{Title: "new", Content: "c", Tags: []string{"x"}, Folder: "f", Type: NoteTypeBig}, n)
}

func TestApplyClearsTagsWhenSuppliedEmpty(t *testing.T) {
	n := Note{Tags: []string{"x"}}

	require.NoError(t, n.Apply(NotePatch{HasTags: true}))

	assert.Equal(t, []string{}, n.Tags)
}

func TestApplyRejectsUnknownType(t *testing.T) {
	n := Note{Type: NoteTypeNormal, Title: "keep"}
	bad := NoteType("OTHER")
	title := "changed"

	err := n.Apply(NotePatch{Type: &bad, Title: &title})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "keep", n.Title)
}
