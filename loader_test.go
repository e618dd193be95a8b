package headpress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eringen/headpress/cms"
)

// memSource is an in-memory cms.Source that counts calls.
type memSource struct {
	posts      map[string]*cms.Post
	byCategory map[int][]cms.Post
	err        error
	calls      int
}

func (m *memSource) PostBySlug(_ context.Context, slug string) (*cms.Post, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.posts[slug]
	if !ok {
		return nil, cms.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memSource) PostsByCategory(_ context.Context, id int) ([]cms.Post, error) {
	m.calls++
	return m.byCategory[id], nil
}

func (m *memSource) RecentPosts(_ context.Context, count int) ([]cms.Post, error) {
	m.calls++
	var out []cms.Post
	for _, p := range m.posts {
		out = append(out, *p)
	}
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func techSource() *memSource {
	tech := cms.Category{DatabaseID: 3, Name: "Tech", Slug: "tech"}
	return &memSource{
		posts: map[string]*cms.Post{
			"hello": {DatabaseID: 1, Slug: "hello", Title: "Hello", Content: "<p>hi</p>", Date: day(5), Categories: []cms.Category{tech}},
		},
		byCategory: map[int][]cms.Post{
			3: {
				{DatabaseID: 1, Slug: "hello", Title: "Hello", Date: day(5)},
				{DatabaseID: 2, Slug: "a", Title: "A", Date: day(9)},
				{DatabaseID: 3, Slug: "b", Title: "B", Date: day(7)},
			},
		},
	}
}

func TestLoadRedirectsSentinelReferer(t *testing.T) {
	src := techSource()
	l := &PostLoader{Source: src, RedirectDomain: "https://wp.example.com", RedirectReferer: DefaultRedirectReferer}

	res, err := l.Load(context.Background(), "hello", "https://l.facebook.com/")
	require.NoError(t, err)
	require.Equal(t, "https://wp.example.com/hello/", res.Redirect)
	require.False(t, res.NotFound)
	require.Nil(t, res.Props.Post)
	require.Zero(t, src.calls, "redirect must not fetch")
}

func TestLoadIgnoresOtherReferers(t *testing.T) {
	l := &PostLoader{Source: techSource(), RedirectDomain: "https://wp.example.com", RedirectReferer: DefaultRedirectReferer}

	for _, ref := range []string{"", "https://l.facebook.com", "https://www.facebook.com/"} {
		res, err := l.Load(context.Background(), "hello", ref)
		require.NoError(t, err)
		require.Empty(t, res.Redirect, ref)
		require.NotNil(t, res.Props.Post, ref)
	}
}

func TestLoadWithoutRedirectDomainServesPost(t *testing.T) {
	l := &PostLoader{Source: techSource(), RedirectReferer: DefaultRedirectReferer}

	res, err := l.Load(context.Background(), "hello", DefaultRedirectReferer)
	require.NoError(t, err)
	require.Empty(t, res.Redirect)
	require.NotNil(t, res.Props.Post)
}

func TestLoadNotFound(t *testing.T) {
	l := &PostLoader{Source: techSource()}

	res, err := l.Load(context.Background(), "missing", "")
	require.NoError(t, err)
	require.True(t, res.NotFound)
	require.Equal(t, PageProps{}, res.Props)
}

func TestLoadRelated(t *testing.T) {
	l := &PostLoader{Source: techSource(), RelatedCount: 5}

	res, err := l.Load(context.Background(), "hello", "")
	require.NoError(t, err)
	require.Equal(t, "hello", res.Props.Post.Slug)
	require.NotNil(t, res.Props.Related)
	require.Equal(t, cms.RelatedTitle{Name: "Tech", Link: "/categories/tech/"}, res.Props.Related.Title)
	require.Equal(t, []cms.RelatedPost{{Title: "A", Slug: "a"}, {Title: "B", Slug: "b"}}, res.Props.Related.Posts)
}

func TestLoadOmitsEmptyRelated(t *testing.T) {
	src := techSource()
	src.byCategory[3] = []cms.Post{{DatabaseID: 1, Slug: "hello"}}
	l := &PostLoader{Source: src, RelatedCount: 5}

	res, err := l.Load(context.Background(), "hello", "")
	require.NoError(t, err)
	require.NotNil(t, res.Props.Post)
	require.Nil(t, res.Props.Related)
}

func TestLoadWithoutCategories(t *testing.T) {
	src := techSource()
	src.posts["hello"].Categories = nil
	l := &PostLoader{Source: src, RelatedCount: 5}

	res, err := l.Load(context.Background(), "hello", "")
	require.NoError(t, err)
	require.Nil(t, res.Props.Related)
}

func TestLoadPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")
	src := techSource()
	src.err = boom
	l := &PostLoader{Source: src}

	_, err := l.Load(context.Background(), "hello", "")
	require.ErrorIs(t, err, boom)
}
