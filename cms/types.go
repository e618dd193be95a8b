// Package cms models blog content served by a headless CMS and provides the
// collaborators the post page is built from: a WordPress GraphQL client,
// related-post selection and path helpers.
package cms

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

// Post is a single blog post as delivered by the CMS.
type Post struct {
	DatabaseID    int
	Slug          string
	Title         string // HTML, trusted
	MetaTitle     string
	Description   string
	Excerpt       string
	Content       string // HTML, trusted
	Date          time.Time
	Modified      time.Time
	Author        *Author
	Categories    []Category
	FeaturedImage *FeaturedImage
	IsSticky      bool
	Canonical     string

	// OG is filled by the SEO plugin when enabled and normalized before render.
	OG      *OpenGraph
	Twitter *Twitter
}

// Author captures post author metadata.
type Author struct {
	Name      string
	Slug      string
	AvatarURL string
}

// Category is a post taxonomy term. Order on a post is significant.
type Category struct {
	DatabaseID int
	Name       string
	Slug       string
}

// FeaturedImage is the hero image attached to a post.
type FeaturedImage struct {
	SourceURL string
	Caption   string // HTML, trusted
	AltText   string
	Width     int
	Height    int
	SrcSet    string
	Sizes     string
}

// OpenGraph holds og:* fields for a post.
type OpenGraph struct {
	Title          string
	Description    string
	URL            string
	Type           string
	SiteName       string
	ImageURL       string
	ImageSecureURL string
	ImageWidth     int
	ImageHeight    int
	PublishedTime  string
	ModifiedTime   string
}

// Twitter holds twitter:* card fields.
type Twitter struct {
	Title       string
	Description string
	ImageURL    string
	CardType    string
	Username    string
}

// RelatedPost is the minimal shape shown in the related list.
type RelatedPost struct {
	Title string
	Slug  string
}

// RelatedPosts is the result of related-post lookup. Category is nil when
// the post has no categories.
type RelatedPosts struct {
	Category *Category
	Posts    []RelatedPost
}

// RelatedTitle labels the related list.
type RelatedTitle struct {
	Name string
	Link string
}

// Related is the related-posts block attached to a rendered post page.
type Related struct {
	Posts []RelatedPost
	Title RelatedTitle
}
