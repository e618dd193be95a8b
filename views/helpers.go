// Package views holds the templ components that render the site.
//
// Components are written directly against templ.ComponentFunc. CMS title,
// body and caption HTML goes through templ.Raw unescaped: CMS editors are
// trusted and their markup is rendered as authored.
package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// page accumulates markup and the first error raised by a nested component.
type page struct {
	ctx context.Context
	buf bytes.Buffer
	err error
}

func (p *page) raw(s ...string) {
	for _, v := range s {
		p.buf.WriteString(v)
	}
}

// text writes s HTML-escaped.
func (p *page) text(s string) {
	p.buf.WriteString(templ.EscapeString(s))
}

// attr writes ` name="value"`, escaped.
func (p *page) attr(name, value string) {
	p.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// optAttr writes the attribute only when value is non-empty.
func (p *page) optAttr(name, value string) {
	if value != "" {
		p.attr(name, value)
	}
}

// href writes a sanitized href attribute.
func (p *page) href(url string) {
	p.attr("href", string(templ.URL(url)))
}

// trustedHTML writes CMS-authored markup without escaping.
func (p *page) trustedHTML(html string) {
	p.component(templ.Raw(html))
}

func (p *page) component(c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(p.ctx, &p.buf)
}

func (p *page) flush(w io.Writer) error {
	if p.err != nil {
		return p.err
	}
	_, err := w.Write(p.buf.Bytes())
	return err
}

// component adapts a build function into a templ.Component.
func component(build func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{ctx: ctx}
		build(p)
		return p.flush(w)
	})
}

func classes(names ...string) string {
	return strings.Join(strings.Fields(strings.Join(names, " ")), " ")
}
