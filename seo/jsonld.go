package seo

import (
	"encoding/json"

	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/format"
)

// ArticleJSONLD returns a schema.org Article JSON-LD string for a post.
func ArticleJSONLD(post *cms.Post, meta Metadata, siteTitle string) string {
	if post == nil {
		return "{}"
	}
	published := format.ISODate(post.Date)
	modified := firstNonEmpty(format.ISODate(post.Modified), published)
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Article",
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   meta.Canonical,
		},
		"headline":      meta.Title,
		"datePublished": published,
		"dateModified":  modified,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  siteTitle,
		},
	}
	if post.FeaturedImage != nil && post.FeaturedImage.SourceURL != "" {
		data["image"] = []string{post.FeaturedImage.SourceURL}
	}
	if post.Author != nil && post.Author.Name != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
