package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func graphQLServer(t *testing.T, handle func(req graphQLRequest) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handle(req)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const postPayload = `{"data":{"post":{
  "databaseId": 42,
  "slug": "hello-world",
  "title": "Hello <em>World</em>",
  "excerpt": "<p>Short</p>",
  "content": "<p>One</p><p>Two</p>",
  "date": "2024-03-01T10:00:00",
  "modified": "2024-03-05T08:30:00",
  "isSticky": true,
  "author": {"node": {"name": "Jane Doe", "slug": "jane-doe", "avatar": {"url": "https://cdn.example.com/jane.png"}}},
  "categories": {"edges": [
    {"node": {"databaseId": 7, "name": "Tech", "slug": "tech"}},
    {"node": {"databaseId": 9, "name": "News", "slug": "news"}}
  ]},
  "featuredImage": {"node": {"altText": "hero", "caption": "<p>Cap</p>", "sourceUrl": "https://cdn.example.com/hero.jpg", "mediaDetails": {"width": 1200, "height": 800}}}
}}}`

func TestClientPostBySlug(t *testing.T) {
	t.Parallel()

	srv := graphQLServer(t, func(req graphQLRequest) string {
		require.Equal(t, "hello-world", req.Variables["slug"])
		require.NotContains(t, req.Query, "seo {")
		return postPayload
	})

	post, err := NewClient(srv.URL).PostBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	require.Equal(t, 42, post.DatabaseID)
	require.Equal(t, "Hello <em>World</em>", post.Title)
	require.True(t, post.IsSticky)
	require.Equal(t, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), post.Modified)
	require.NotNil(t, post.Author)
	require.Equal(t, "jane-doe", post.Author.Slug)
	require.Equal(t, []Category{
		{DatabaseID: 7, Name: "Tech", Slug: "tech"},
		{DatabaseID: 9, Name: "News", Slug: "news"},
	}, post.Categories)
	require.NotNil(t, post.FeaturedImage)
	require.Equal(t, 1200, post.FeaturedImage.Width)
	require.Nil(t, post.OG, "og is only populated by the SEO plugin")
}

func TestClientPostBySlugNull(t *testing.T) {
	t.Parallel()

	srv := graphQLServer(t, func(graphQLRequest) string {
		return `{"data":{"post":null}}`
	})

	_, err := NewClient(srv.URL).PostBySlug(context.Background(), "missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestClientPostBySlugWithSEO(t *testing.T) {
	t.Parallel()

	srv := graphQLServer(t, func(req graphQLRequest) string {
		require.Contains(t, req.Query, "seo {")
		return `{"data":{"post":{"databaseId":1,"slug":"s","title":"T",
		  "seo":{"title":"Meta T","metaDesc":"Desc","canonical":"https://example.com/s/",
		  "opengraphDescription":"OG Desc","opengraphType":"article",
		  "twitterTitle":"TW","twitterImage":{"sourceUrl":"https://cdn.example.com/tw.jpg"}}}}}`
	})

	post, err := NewClient(srv.URL, WithSEOPlugin(true)).PostBySlug(context.Background(), "s")
	require.NoError(t, err)
	require.Equal(t, "Meta T", post.MetaTitle)
	require.Equal(t, "Desc", post.Description)
	require.NotNil(t, post.OG)
	require.Equal(t, "OG Desc", post.OG.Description)
	require.NotNil(t, post.Twitter)
	require.Equal(t, "https://cdn.example.com/tw.jpg", post.Twitter.ImageURL)
}

func TestClientGraphQLErrors(t *testing.T) {
	t.Parallel()

	srv := graphQLServer(t, func(graphQLRequest) string {
		return `{"errors":[{"message":"boom"},{"message":"again"}]}`
	})

	_, err := NewClient(srv.URL).PostBySlug(context.Background(), "x")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "boom; again")
}

func TestClientHTTPStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).PostsByCategory(context.Background(), 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 502")
}

func TestClientPostsByCategory(t *testing.T) {
	t.Parallel()

	srv := graphQLServer(t, func(req graphQLRequest) string {
		require.True(t, strings.HasPrefix(req.Query, "query PostsByCategoryId"))
		require.EqualValues(t, 7, req.Variables["categoryId"])
		return `{"data":{"posts":{"edges":[
		  {"node":{"databaseId":1,"slug":"a","title":"A","date":"2024-01-01T00:00:00"}},
		  {"node":{"databaseId":2,"slug":"b","title":"B","date":"2024-02-01T00:00:00"}}
		]}}}`
	})

	posts, err := NewClient(srv.URL).PostsByCategory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "a", posts[0].Slug)
}

func TestClientWithoutEndpoint(t *testing.T) {
	t.Parallel()

	_, err := NewClient("").RecentPosts(context.Background(), 3)
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Date(2021, 1, 12, 19, 33, 30, 0, time.UTC), ParseDate("2021-01-12T19:33:30"))
	require.Equal(t, time.Date(2021, 1, 12, 0, 0, 0, 0, time.UTC), ParseDate("2021-01-12"))
	require.True(t, ParseDate("not a date").IsZero())
	require.True(t, ParseDate("").IsZero())
}
