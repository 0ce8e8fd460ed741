package htmltext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "hello", want: "hello"},
		{name: "paragraphs", in: "<p>one</p><p>two</p>", want: "one two"},
		{name: "br", in: "a<br/>b", want: "a b"},
		{name: "inline", in: "<p>bo<strong>ld</strong> text</p>", want: "bold text"},
		{name: "entities", in: "<p>a &amp; b &lt;c&gt;</p>", want: "a & b <c>"},
		{name: "whitespace", in: "<p>  a \n\t b  </p>", want: "a b"},
		{name: "script", in: "<p>x</p><script>var y = 1;</script><style>p{}</style>", want: "x"},
		{name: "heading", in: `<h1 class="title">T</h1><p>body</p>`, want: "T body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestAnalyze(t *testing.T) {
	assert.Equal(t, Stats{}, Analyze(""))
	assert.Equal(t, Stats{}, Analyze("<p> </p>"))

	st := Analyze("<p>héllo world</p>")
	assert.Equal(t, 2, st.Words)
	assert.Equal(t, 11, st.Chars)
	assert.Equal(t, 1, st.ReadMinutes)

	long := "<p>" + strings.Repeat("word ", 401) + "</p>"
	assert.Equal(t, 3, Analyze(long).ReadMinutes)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount(" a  b\nc "))
}
