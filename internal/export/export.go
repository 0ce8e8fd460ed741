// Package export renders notes as standalone files.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/Faizanmoriani2/bignote/pkg/htmltext"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

type Format string

const (
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTXT, FormatHTML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

const maxNameLen = 100

// FileName is the title reduced to a portable file name, "note" when
// nothing usable is left.
func FileName(n v1.Note, f Format) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r), unicode.IsControl(r):
			return '_'
		case unicode.IsSpace(r):
			return ' '
		}
		return r
	}, n.Title)

	name = strings.Trim(strings.Join(strings.Fields(name), " "), ". ")
	if r := []rune(name); len(r) > maxNameLen {
		name = strings.TrimSpace(string(r[:maxNameLen]))
	}
	if name == "" {
		name = "note"
	}

	return name + "." + string(f)
}

func Render(n v1.Note, f Format) ([]byte, error) {
	switch f {
	case FormatTXT:
		return []byte(Text(n)), nil
	case FormatHTML:
		return []byte(Document(n)), nil
	case FormatJSON:
		b, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal note: %v", err)
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// Text is the title line followed by the plain text of the body.
func Text(n v1.Note) string {
	body := htmltext.PlainText(n.Content)
	switch {
	case n.Title == "":
		return body + "\n"
	case body == "":
		return n.Title + "\n"
	}
	return n.Title + "\n\n" + body + "\n"
}

const documentTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>
`

// Document wraps the stored HTML body in a complete page. The body is
// written as stored.
func Document(n v1.Note) string {
	title := html.EscapeString(n.Title)
	return fmt.Sprintf(documentTmpl, title, title, n.Content)
}
