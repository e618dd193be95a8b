// Package seo computes page metadata for posts and renders it into head
// tags and schema.org JSON-LD.
package seo

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/format"
)

// OGImageWidth and OGImageHeight are advertised for every post image. They
// are fixed and not derived from the actual image.
const (
	OGImageWidth  = 2000
	OGImageHeight = 1000
)

// Site carries the site-wide values metadata falls back to.
type Site struct {
	Name            string
	URL             string
	Description     string
	Language        string
	TwitterUsername string
}

// Metadata is the computed head metadata of a page.
type Metadata struct {
	Title       string
	Description string
	Canonical   string
	Language    string
	OG          cms.OpenGraph
	Twitter     cms.Twitter
}

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips markup and collapses whitespace.
func PlainText(s string) string {
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// SiteMetadata returns the defaults every page starts from.
func SiteMetadata(site Site) Metadata {
	return Metadata{
		Title:       site.Name,
		Description: site.Description,
		Canonical:   site.URL,
		Language:    site.Language,
		OG: cms.OpenGraph{
			Title:       site.Name,
			Description: site.Description,
			URL:         site.URL,
			Type:        "website",
			SiteName:    site.Name,
		},
		Twitter: cms.Twitter{
			CardType: "summary_large_image",
			Username: site.TwitterUsername,
		},
	}
}

// NormalizeOpenGraph makes sure post.OG exists and advertises the featured
// image with the fixed og dimensions. It mutates post.
func NormalizeOpenGraph(post *cms.Post) {
	if post == nil {
		return
	}
	if post.OG == nil {
		post.OG = &cms.OpenGraph{}
	}
	if post.FeaturedImage != nil {
		post.OG.ImageURL = post.FeaturedImage.SourceURL
	}
	post.OG.ImageSecureURL = post.OG.ImageURL
	post.OG.ImageWidth = OGImageWidth
	post.OG.ImageHeight = OGImageHeight
}

// PostMetadata merges site defaults with the post's own metadata. Without
// the SEO plugin the title is "{title} - {site name}" everywhere.
func PostMetadata(site Site, post *cms.Post, seoPluginEnabled bool) Metadata {
	meta := SiteMetadata(site)
	if post == nil {
		return meta
	}
	title := PlainText(post.Title)

	var og cms.OpenGraph
	if post.OG != nil {
		og = *post.OG
	}
	var tw cms.Twitter
	if post.Twitter != nil {
		tw = *post.Twitter
	}

	meta.Title = firstNonEmpty(PlainText(post.MetaTitle), title)
	meta.Description = firstNonEmpty(
		PlainText(post.Description),
		PlainText(og.Description),
		"Read more about "+title,
	)
	meta.Canonical = firstNonEmpty(post.Canonical, joinURL(site.URL, cms.PostPathBySlug(post.Slug)))

	meta.OG.Title = firstNonEmpty(og.Title, meta.Title)
	meta.OG.Description = firstNonEmpty(og.Description, meta.Description)
	meta.OG.URL = firstNonEmpty(og.URL, meta.Canonical)
	meta.OG.Type = firstNonEmpty(og.Type, "article")
	meta.OG.SiteName = firstNonEmpty(og.SiteName, meta.OG.SiteName)
	meta.OG.ImageURL = og.ImageURL
	meta.OG.ImageSecureURL = og.ImageSecureURL
	meta.OG.ImageWidth = og.ImageWidth
	meta.OG.ImageHeight = og.ImageHeight
	meta.OG.PublishedTime = firstNonEmpty(og.PublishedTime, format.ISODate(post.Date))
	meta.OG.ModifiedTime = firstNonEmpty(og.ModifiedTime, format.ISODate(post.Modified))

	meta.Twitter.Title = firstNonEmpty(tw.Title, meta.Title)
	meta.Twitter.Description = firstNonEmpty(tw.Description, meta.Description)
	meta.Twitter.ImageURL = firstNonEmpty(tw.ImageURL, og.ImageURL)
	meta.Twitter.CardType = firstNonEmpty(tw.CardType, meta.Twitter.CardType)
	meta.Twitter.Username = firstNonEmpty(tw.Username, meta.Twitter.Username)

	if !seoPluginEnabled {
		full := title + " - " + site.Name
		meta.Title = full
		meta.OG.Title = full
		meta.Twitter.Title = full
	}
	return meta
}

func joinURL(base, path string) string {
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
