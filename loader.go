package headpress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eringen/headpress/cms"
)

// PageProps is the data a post page renders from. Related is nil when no
// related category produced posts.
type PageProps struct {
	Post    *cms.Post
	Related *cms.Related
}

// PageResult is the loader outcome. At most one of Redirect and NotFound is
// set; otherwise Props holds the page data.
type PageResult struct {
	Redirect string
	NotFound bool
	Props    PageProps
}

// PostLoader resolves a slug into page props.
type PostLoader struct {
	Source          cms.Source
	RedirectDomain  string
	RedirectReferer string
	RelatedCount    int
}

// Load answers a request for slug. Visitors arriving from RedirectReferer
// are sent to "{RedirectDomain}/{slug}/" without touching the source.
// Fetch errors other than cms.ErrNotFound are returned as is.
func (l *PostLoader) Load(ctx context.Context, slug, referer string) (PageResult, error) {
	if l.RedirectDomain != "" && referer != "" && referer == l.RedirectReferer {
		return PageResult{Redirect: strings.TrimRight(l.RedirectDomain, "/") + "/" + slug + "/"}, nil
	}

	post, err := l.Source.PostBySlug(ctx, slug)
	if errors.Is(err, cms.ErrNotFound) {
		return PageResult{NotFound: true}, nil
	}
	if err != nil {
		return PageResult{}, fmt.Errorf("headpress: load post %q: %w", slug, err)
	}
	if post == nil {
		return PageResult{NotFound: true}, nil
	}

	result := PageResult{Props: PageProps{Post: post}}

	related, err := cms.GetRelatedPosts(ctx, l.Source, post.Categories, post.DatabaseID, l.RelatedCount)
	if err != nil {
		return PageResult{}, fmt.Errorf("headpress: related posts for %q: %w", slug, err)
	}
	if related != nil && related.Category != nil && len(related.Posts) > 0 {
		result.Props.Related = &cms.Related{
			Posts: related.Posts,
			Title: cms.RelatedTitle{
				Name: related.Category.Name,
				Link: cms.CategoryPathBySlug(related.Category.Slug),
			},
		}
	}
	return result, nil
}
