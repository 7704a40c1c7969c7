/*
Package input reads the text that tickers are extracted from.
*/
package input

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Read consumes r to EOF. Input that is not valid UTF-8 is rejected with an
// error wrapping encoding.ErrInvalidUTF8.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// blockElements break the flow of text when rendered. Text on either side of
// them never joins into one word.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "title": true,
	"tr": true, "ul": true,
}

// VisibleText parses an HTML document and returns its text in document order.
// Text nodes are concatenated as the parser leaves them, so inline markup such
// as <a> or <b> never splits a word; block-level elements are separated by a
// newline. Script, style and noscript content is skipped.
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		block := false
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
			block = blockElements[n.Data]
		}

		if block {
			sb.WriteByte('\n')
		}

		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}

		if block {
			sb.WriteByte('\n')
		}
	}

	f(doc)
	return strings.TrimSpace(sb.String()), nil
}
