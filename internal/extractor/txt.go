package extractor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractTxt wraps the whole file in one paragraph; line breaks become <br/>.
// A UTF-16 or UTF-8 byte order mark selects the decoding, UTF-8 otherwise.
func extractTxt(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	raw, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("%w: txt: %v", ErrRead, err)
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = html.EscapeString(text)
	text = strings.ReplaceAll(text, "\n", "<br/>")

	return "<p>" + text + "</p>", nil
}
