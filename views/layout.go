package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/headpress/seo"
)

// Layout wraps body in the site document shell with head tags from meta.
func Layout(site seo.Site, meta seo.Metadata, jsonLD string, body templ.Component) templ.Component {
	return component(func(p *page) {
		lang := meta.Language
		if lang == "" {
			lang = "en"
		}
		p.raw("<!doctype html><html")
		p.attr("lang", lang)
		p.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		headTags(p, seo.HeadTags(meta))
		if jsonLD != "" {
			// json.Marshal escapes <, > and &, so the payload cannot close the script.
			p.raw(`<script type="application/ld+json">`, jsonLD, `</script>`)
		}
		p.raw(`<link rel="stylesheet" href="/public/styles.css"></head><body>`)

		p.raw(`<header class="header"><div class="container"><a class="siteName"`)
		p.href("/")
		p.raw(">")
		p.text(site.Name)
		p.raw("</a></div></header><main>")
		p.component(body)
		p.raw(`</main><footer class="footer"><div class="container"><p>&copy; `)
		p.text(strconv.Itoa(time.Now().Year()) + " " + site.Name)
		p.raw("</p></div></footer></body></html>")
	})
}

func headTags(p *page, tags []seo.Tag) {
	for _, t := range tags {
		switch t.Element {
		case "title":
			p.raw("<title>")
			p.text(t.Content)
			p.raw("</title>")
		case "link":
			p.raw("<link")
			p.attr("rel", t.Rel)
			p.attr("href", t.Href)
			p.raw(">")
		case "meta":
			p.raw("<meta")
			p.optAttr("name", t.Name)
			p.optAttr("property", t.Property)
			p.attr("content", t.Content)
			p.raw(">")
		}
	}
}
