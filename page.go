package headpress

import (
	"github.com/eringen/headpress/seo"
	"github.com/eringen/headpress/views"
)

// BuildPostPage prepares props for rendering. It normalizes the post's
// OpenGraph data in place, then computes head metadata and JSON-LD.
func BuildPostPage(cfg SiteConfig, props PageProps) views.PostPage {
	site := cfg.Site()
	seo.NormalizeOpenGraph(props.Post)
	meta := seo.PostMetadata(site, props.Post, cfg.SEOPluginEnabled)
	page := views.PostPage{
		Site:    site,
		Post:    props.Post,
		Related: props.Related,
		Meta:    meta,
	}
	if props.Post != nil {
		page.JSONLD = seo.ArticleJSONLD(props.Post, meta, site.Name)
	}
	return page
}
