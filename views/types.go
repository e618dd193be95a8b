package views

import (
	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/seo"
)

// PostPage is everything the post template needs. Post.OG has already been
// normalized and Meta computed when a PostPage reaches a view.
type PostPage struct {
	Site    seo.Site
	Post    *cms.Post
	Related *cms.Related
	Meta    seo.Metadata
	JSONLD  string
}
