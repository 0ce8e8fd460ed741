package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" HTML ")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("pdf")
	require.Error(t, err)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "", want: "note.txt"},
		{title: "Meeting notes", want: "Meeting notes.txt"},
		{title: "a/b:c?", want: "a_b_c_.txt"},
		{title: "  spaced\tout  ", want: "spaced out.txt"},
		{title: "...", want: "note.txt"},
		{title: strings.Repeat("x", 150), want: strings.Repeat("x", 100) + ".txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(v1.Note{Title: tt.title}, FormatTXT), tt.title)
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "T\n\none two\n", Text(v1.Note{Title: "T", Content: "<p>one</p><p>two</p>"}))
	assert.Equal(t, "T\n", Text(v1.Note{Title: "T"}))
	assert.Equal(t, "body\n", Text(v1.Note{Content: "<p>body</p>"}))
}

func TestDocumentEscapesTitle(t *testing.T) {
	doc := Document(v1.Note{Title: "a<b", Content: "<p>x</p>"})

	assert.Contains(t, doc, "<title>a&lt;b</title>")
	assert.Contains(t, doc, "<h1>a&lt;b</h1>")
	assert.Contains(t, doc, "<p>x</p>")
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
}

func TestRenderJSON(t *testing.T) {
	n := v1.Note{ID: "1", Title: "T", Type: v1.TypeBig, Tags: []string{"a"}}

	b, err := Render(n, FormatJSON)
	require.NoError(t, err)

	var got v1.Note
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, n, got)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(v1.Note{}, Format("pdf"))
	require.Error(t, err)
}
