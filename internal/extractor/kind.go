package extractor

import (
	"path"
	"strings"
)

// Kind is the closed set of upload formats the extractor distinguishes.
type Kind int

const (
	KindUnsupported Kind = iota
	KindTxt
	KindDocx
)

func (k Kind) String() string {
	switch k {
	case KindTxt:
		return "txt"
	case KindDocx:
		return "docx"
	default:
		return "unsupported"
	}
}

// KindFromName classifies a file by the suffix after its last dot,
// ignoring case.
func KindFromName(name string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))

	switch ext {
	case "txt":
		return KindTxt
	case "docx":
		return KindDocx
	default:
		return KindUnsupported
	}
}
