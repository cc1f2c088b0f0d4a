// Package page reads a filterable collection out of an HTML page and writes
// the result of a filter state back into it.
//
// The page is expected to carry one <select> per dimension, a list of item
// elements and, inside each item, elements whose text holds the item's tags.
// All selectors come from config.PageCfg and config.DimensionCfg.
//
// Example:
//
//	doc, err := page.Parse(r)
//	cat, err := doc.Catalog(cfg)
//	engine := filtering.NewEngine(cat, rules)
//	summary, err := doc.Apply(cfg, engine, state)
//	err = doc.Render(w)
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ajxudir/cascade/pkg/config"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node

	// last binding, reused while the same config is passed
	bound    *binding
	boundCfg *config.Config
}

// Parse reads an HTML document.
//
// Parameters:
//   - r: HTML source
//
// Returns:
//   - *Document: Parsed page
//   - error: When the source cannot be read
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

// textContent returns the collapsed text of n and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// setText replaces the children of n with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// options returns the <option> elements under a <select>, including those
// nested in <optgroup>.
func options(sel *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Option:
				out = append(out, c)
			case atom.Optgroup:
				walk(c)
			}
		}
	}
	walk(sel)
	return out
}

// isPlaceholder reports whether an option is the "all" entry (value="").
func isPlaceholder(opt *html.Node) bool {
	v, ok := getAttr(opt, "value")
	return ok && strings.TrimSpace(v) == ""
}
