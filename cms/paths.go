package cms

import (
	"net/url"
	"strings"
)

// PostPathBySlug returns the site path of a post.
func PostPathBySlug(slug string) string {
	return pathFor("posts", slug)
}

// CategoryPathBySlug returns the site path of a category archive.
func CategoryPathBySlug(slug string) string {
	return pathFor("categories", slug)
}

// AuthorPathBySlug returns the site path of an author archive.
func AuthorPathBySlug(slug string) string {
	return pathFor("authors", slug)
}

func pathFor(section, slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	return "/" + section + "/" + url.PathEscape(slug) + "/"
}
