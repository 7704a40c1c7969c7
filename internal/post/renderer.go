/*
Package post renders assembled movers blocks for output.
*/
package post

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/shanehull/movers/internal/format"
	"github.com/shanehull/movers/internal/types"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

// Renderer turns blocks into a complete document.
type Renderer interface {
	Render(blocks []types.Block) (string, error)
}

// TextRenderer produces the plain text post followed by a newline.
type TextRenderer struct{}

func (TextRenderer) Render(blocks []types.Block) (string, error) {
	return format.Join(blocks) + "\n", nil
}

// HTMLRenderer renders blocks as a standalone HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates a renderer with the default page template.
func NewHTMLRenderer() *HTMLRenderer {
	t := template.Must(template.New("post").Parse(postHTMLTemplate))
	return &HTMLRenderer{tmpl: t}
}

type blockView struct {
	Count       int
	Prefix      string
	HeaderLines []string
	Line        string
}

func (r *HTMLRenderer) Render(blocks []types.Block) (string, error) {
	views := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, blockView{
			Count:       b.Count,
			Prefix:      string(b.Prefix),
			HeaderLines: headerLines(b.Header),
			Line:        b.Line,
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, struct{ Blocks []blockView }{views}); err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}
	return buf.String(), nil
}

func headerLines(header string) []string {
	var lines []string
	for _, line := range strings.Split(header, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ByName returns the renderer for a -format value.
func ByName(name string) (Renderer, error) {
	switch name {
	case FormatText:
		return TextRenderer{}, nil
	case FormatHTML:
		return NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", name, FormatText, FormatHTML)
	}
}

// Write renders the whole document before writing it, so a render failure
// leaves w untouched.
func Write(w io.Writer, r Renderer, blocks []types.Block) error {
	doc, err := r.Render(blocks)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
