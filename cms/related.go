package cms

import (
	"context"
	"sort"
)

// DefaultRelatedCount is the maximum number of related posts returned.
const DefaultRelatedCount = 5

// Source is a read-only provider of post content. Both the GraphQL client
// and the local SQLite mirror implement it.
type Source interface {
	// PostBySlug returns ErrNotFound when no published post matches.
	PostBySlug(ctx context.Context, slug string) (*Post, error)
	PostsByCategory(ctx context.Context, categoryID int) ([]Post, error)
	RecentPosts(ctx context.Context, count int) ([]Post, error)
}

// GetRelatedPosts picks the first of categories, in order, that has other
// posts besides excludeID and returns up to count of them, newest first.
// It returns nil when categories is empty. When no category has other
// posts, the result carries the last tried category and an empty list.
func GetRelatedPosts(ctx context.Context, src Source, categories []Category, excludeID, count int) (*RelatedPosts, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	if count <= 0 {
		count = DefaultRelatedCount
	}

	var related *RelatedPosts
	for i := range categories {
		category := categories[i]
		posts, err := src.PostsByCategory(ctx, category.DatabaseID)
		if err != nil {
			return nil, err
		}
		related = &RelatedPosts{
			Category: &category,
			Posts:    relatedFrom(posts, excludeID),
		}
		if len(related.Posts) > 0 {
			break
		}
	}
	if len(related.Posts) > count {
		related.Posts = related.Posts[:count]
	}
	return related, nil
}

func relatedFrom(posts []Post, excludeID int) []RelatedPost {
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.DatabaseID == excludeID {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	out := make([]RelatedPost, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, RelatedPost{Title: p.Title, Slug: p.Slug})
	}
	return out
}
