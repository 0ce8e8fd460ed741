package extractor

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/net/html"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// blockTags maps a paragraph's declared style name to its HTML element.
var blockTags = map[string]blockTag{
	"heading 1": {open: "<h1>", close: "</h1>"},
	"heading 2": {open: "<h2>", close: "</h2>"},
	"heading 3": {open: "<h3>", close: "</h3>"},
	"title":     {open: `<h1 class="title">`, close: "</h1>"},
}

var paragraphTag = blockTag{open: "<p>", close: "</p>"}

type blockTag struct {
	open, close string
}

func tagForStyle(name string) blockTag {
	if tag, ok := blockTags[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tag
	}
	return paragraphTag
}

func extractDocx(r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrRead, err)
	}

	styles, err := readStyleNames(zr)
	if err != nil {
		return "", err
	}

	doc, err := zr.Open(documentPart)
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrRead, err)
	}
	defer doc.Close()

	out, err := convertDocument(doc, styles)
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrRead, err)
	}

	return out, nil
}

// readStyleNames maps style ids to their display names. Documents without a
// styles part are valid.
func readStyleNames(zr *zip.Reader) (map[string]string, error) {
	names := map[string]string{}

	f, err := zr.Open(stylesPart)
	if errors.Is(err, fs.ErrNotExist) {
		return names, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: docx styles: %v", ErrRead, err)
	}
	defer f.Close()

	var styles struct {
		Styles []struct {
			ID   string `xml:"styleId,attr"`
			Name struct {
				Val string `xml:"val,attr"`
			} `xml:"name"`
		} `xml:"style"`
	}
	if err := xml.NewDecoder(f).Decode(&styles); err != nil {
		return nil, fmt.Errorf("%w: docx styles: %v", ErrRead, err)
	}

	for _, s := range styles.Styles {
		names[s.ID] = s.Name.Val
	}

	return names, nil
}

const (
	wordNS       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	strictWordNS = "http://purl.oclc.org/ooxml/wordprocessingml/main"
	compatNS     = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

func isWord(n xml.Name) bool {
	return n.Space == wordNS || n.Space == strictWordNS
}

// paragraph is one open w:p. Paragraphs of text boxes nest inside the run
// that anchors them; their blocks are collected in nested and written
// after the enclosing paragraph.
type paragraph struct {
	styleID string
	body    strings.Builder
	nested  strings.Builder

	run    *run
	inText bool
	inRPr  bool
}

func (p *paragraph) html(styles map[string]string) string {
	var b strings.Builder
	if p.body.Len() > 0 {
		name, ok := styles[p.styleID]
		if !ok {
			name = p.styleID
		}
		tag := tagForStyle(name)
		b.WriteString(tag.open)
		b.WriteString(p.body.String())
		b.WriteString(tag.close)
	}
	b.WriteString(p.nested.String())
	return b.String()
}

type run struct {
	bold, italic bool
	text         strings.Builder
}

func convertDocument(r io.Reader, styles map[string]string) (string, error) {
	var (
		out   strings.Builder
		stack []*paragraph
	)
	top := func() *paragraph {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// Alternate content is written twice; only the fallback is read.
			if t.Name.Space == compatNS && t.Name.Local == "Choice" {
				if err := dec.Skip(); err != nil {
					return "", err
				}
				continue
			}
			if !isWord(t.Name) {
				continue
			}

			if t.Name.Local == "p" {
				stack = append(stack, &paragraph{})
				continue
			}

			para := top()
			if para == nil {
				continue
			}
			cur := para.run

			switch t.Name.Local {
			case "pStyle":
				para.styleID = attr(t, "val")
			case "r":
				para.run = &run{}
			case "rPr":
				para.inRPr = true
			case "b":
				if cur != nil && para.inRPr {
					cur.bold = toggleOn(t)
				}
			case "i":
				if cur != nil && para.inRPr {
					cur.italic = toggleOn(t)
				}
			case "t":
				para.inText = true
			case "tab":
				if cur != nil {
					cur.text.WriteString("\t")
				}
			case "br":
				if cur != nil {
					cur.text.WriteString("<br/>")
				}
			}

		case xml.CharData:
			if para := top(); para != nil && para.inText && para.run != nil {
				para.run.text.WriteString(html.EscapeString(string(t)))
			}

		case xml.EndElement:
			if !isWord(t.Name) {
				continue
			}
			para := top()
			if para == nil {
				continue
			}

			switch t.Name.Local {
			case "t":
				para.inText = false
			case "rPr":
				para.inRPr = false
			case "r":
				if para.run != nil {
					para.body.WriteString(para.run.html())
				}
				para.run = nil
			case "p":
				stack = stack[:len(stack)-1]
				block := para.html(styles)
				if parent := top(); parent != nil {
					parent.nested.WriteString(block)
				} else {
					out.WriteString(block)
				}
			}
		}
	}

	return out.String(), nil
}

func (r *run) html() string {
	s := r.text.String()
	if s == "" {
		return ""
	}
	if r.italic {
		s = "<em>" + s + "</em>"
	}
	if r.bold {
		s = "<strong>" + s + "</strong>"
	}
	return s
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// toggleOn reads an OOXML on/off property such as <w:b/> or <w:b w:val="0"/>.
func toggleOn(el xml.StartElement) bool {
	switch strings.ToLower(attr(el, "val")) {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}
