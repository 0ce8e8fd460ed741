// Package htmltext derives plain text and reading statistics from note HTML.
package htmltext

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const wordsPerMinute = 200

// PlainText drops markup and collapses whitespace. Block elements and <br>
// separate words; the contents of <script> and <style> are skipped.
func PlainText(s string) string {
	var (
		b    strings.Builder
		skip int
	)

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far stands.
			return collapse(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				skip++
			}
			if breaks(a) {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
			if breaks(a) {
				b.WriteByte(' ')
			}
		}
	}
}

func breaks(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr, atom.Td, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre, atom.Hr:
		return true
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

type Stats struct {
	Words       int
	Chars       int
	ReadMinutes int
}

// Analyze reports counts over the plain text of s. Reading time rounds up
// and is at least one minute for any non-empty note.
func Analyze(s string) Stats {
	text := PlainText(s)
	st := Stats{
		Words: WordCount(text),
		Chars: utf8.RuneCountInString(text),
	}
	if st.Words > 0 {
		st.ReadMinutes = int(math.Ceil(float64(st.Words) / wordsPerMinute))
	}
	return st
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
