package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrRead marks a file that could not be read or decoded.
var ErrRead = errors.New("read uploaded file")

// Extract returns the HTML for one uploaded file. Unsupported kinds yield an
// empty string and no error.
func Extract(ctx context.Context, kind Kind, r io.ReaderAt, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch kind {
	case KindTxt:
		return extractTxt(io.NewSectionReader(r, 0, size))
	case KindDocx:
		return extractDocx(r, size)
	case KindUnsupported:
		return "", nil
	default:
		return "", fmt.Errorf("unknown extractor kind %d", kind)
	}
}
