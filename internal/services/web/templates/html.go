package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup accumulates the first write error so component bodies stay linear.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes HTML-escaped character data.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// open writes a start tag with escaped attribute pairs.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.raw(" " + attrs[i] + "=\"" + templ.EscapeString(attrs[i+1]) + "\"")
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// elem writes <tag attrs>text</tag>.
func (m *markup) elem(tag string, body string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(body)
	m.close(tag)
}

// link writes an anchor whose href is sanitized by templ.
func (m *markup) link(href string, class string, body func()) {
	m.open("a", "href", string(templ.URL(href)), "class", class)
	body()
	m.close("a")
}

func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markup) children() {
	m.render(templ.GetChildren(m.ctx))
}
