package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/headpress/seo"
)

// NotFound renders the 404 page.
func NotFound(site seo.Site) templ.Component {
	meta := seo.SiteMetadata(site)
	meta.Title = "Page Not Found - " + site.Name
	return Layout(site, meta, "", message("Page Not Found", "The page you were looking for could not be found."))
}

// ServerError renders the 5xx page.
func ServerError(site seo.Site) templ.Component {
	meta := seo.SiteMetadata(site)
	meta.Title = "Something went wrong - " + site.Name
	return Layout(site, meta, "", message("Something went wrong", "Please try again in a moment."))
}

func message(title, body string) templ.Component {
	return component(func(p *page) {
		p.raw(`<section class="section"><div class="container"><h1>`)
		p.text(title)
		p.raw("</h1><p>")
		p.text(body)
		p.raw(`</p><p><a href="/">Back home</a></p></div></section>`)
	})
}
