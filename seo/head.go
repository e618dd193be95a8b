package seo

import "strconv"

// Tag is a single <meta>, <link> or <title> element for the page head.
type Tag struct {
	Element  string // "title", "meta" or "link"
	Name     string
	Property string
	Content  string
	Rel      string
	Href     string
}

// HeadTags turns metadata into head elements. Entries without a value are
// dropped.
func HeadTags(meta Metadata) []Tag {
	description := PlainText(meta.Description)
	tags := []Tag{{Element: "title", Content: meta.Title}}
	if meta.Canonical != "" {
		tags = append(tags, Tag{Element: "link", Rel: "canonical", Href: meta.Canonical})
	}

	add := func(name, property, content string) {
		if content == "" {
			return
		}
		tags = append(tags, Tag{Element: "meta", Name: name, Property: property, Content: content})
	}
	add("description", "", description)
	add("", "og:title", firstNonEmpty(meta.OG.Title, meta.Title))
	add("", "og:description", firstNonEmpty(meta.OG.Description, description))
	add("", "og:url", meta.OG.URL)
	add("", "og:image", meta.OG.ImageURL)
	add("", "og:image:secure_url", meta.OG.ImageSecureURL)
	add("", "og:image:width", positive(meta.OG.ImageWidth))
	add("", "og:image:height", positive(meta.OG.ImageHeight))
	add("", "og:type", firstNonEmpty(meta.OG.Type, "website"))
	add("", "og:site_name", meta.OG.SiteName)
	add("", "article:published_time", meta.OG.PublishedTime)
	add("", "article:modified_time", meta.OG.ModifiedTime)
	add("twitter:title", "", firstNonEmpty(meta.Twitter.Title, meta.Title))
	add("twitter:description", "", firstNonEmpty(meta.Twitter.Description, description))
	add("twitter:card", "", meta.Twitter.CardType)
	add("twitter:image", "", meta.Twitter.ImageURL)
	add("twitter:site", "", meta.Twitter.Username)
	return tags
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
