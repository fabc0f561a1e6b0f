// Package htmltest parses rendered HTML for structural test assertions.
package htmltest

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Parse parses body as an HTML document, failing the test on error.
// Fragments are wrapped in the implied html/head/body elements.
func Parse(t testing.TB, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll returns every element under root accepted by match, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Find returns the first element accepted by match, or nil.
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	found := FindAll(root, match)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Tag matches elements by tag name.
func Tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

// ID matches the element with the given id attribute.
func ID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		got, ok := Attr(n, "id")
		return ok && got == id
	}
}

// Class matches elements carrying class among their classes.
func Class(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

// AttrEquals matches elements whose attribute key equals value.
func AttrEquals(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		got, ok := Attr(n, key)
		return ok && got == value
	}
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n lists class in its class attribute.
func HasClass(n *html.Node, class string) bool {
	value, ok := Attr(n, "class")
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(value), class)
}

// Text returns the text content of n with whitespace collapsed.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Hrefs returns the href of every anchor under root.
func Hrefs(root *html.Node) []string {
	var out []string
	for _, a := range FindAll(root, Tag("a")) {
		if href, ok := Attr(a, "href"); ok {
			out = append(out, href)
		}
	}
	return out
}
