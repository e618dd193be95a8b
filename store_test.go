package headpress

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/eringen/headpress/cms"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		s.Close()
	}

	return s, cleanup
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 30, 0, 0, time.UTC)
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	post := &cms.Post{
		DatabaseID: 42,
		Slug:       "test-post",
		Title:      "Test <em>Post</em>",
		MetaTitle:  "Meta",
		Content:    "<p>Body</p>",
		Date:       day(15),
		Modified:   day(16),
		IsSticky:   true,
		Author:     &cms.Author{Name: "Ada", Slug: "ada"},
		Categories: []cms.Category{
			{DatabaseID: 9, Name: "Tech", Slug: "tech"},
			{Name: "Go", Slug: "go"},
		},
		FeaturedImage: &cms.FeaturedImage{SourceURL: "/public/a.jpg", Width: 10, Height: 5},
	}
	if err := s.SavePost(ctx, post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if post.Categories[1].DatabaseID == 0 {
		t.Error("category without id should get one assigned")
	}

	got, err := s.PostBySlug(ctx, "test-post")
	if err != nil {
		t.Fatalf("PostBySlug failed: %v", err)
	}
	if got.DatabaseID != 42 {
		t.Errorf("DatabaseID = %d, want 42", got.DatabaseID)
	}
	if got.Title != post.Title {
		t.Errorf("Title = %q, want %q", got.Title, post.Title)
	}
	if !got.Date.Equal(post.Date) || !got.Modified.Equal(post.Modified) {
		t.Errorf("dates = %v/%v, want %v/%v", got.Date, got.Modified, post.Date, post.Modified)
	}
	if !got.IsSticky {
		t.Error("IsSticky should round-trip")
	}
	if got.Author == nil || got.Author.Name != "Ada" {
		t.Errorf("Author = %+v", got.Author)
	}
	if got.FeaturedImage == nil || got.FeaturedImage.Width != 10 {
		t.Errorf("FeaturedImage = %+v", got.FeaturedImage)
	}
	if len(got.Categories) != 2 || got.Categories[0].Slug != "tech" || got.Categories[1].Slug != "go" {
		t.Errorf("Categories = %+v, want tech then go", got.Categories)
	}
}

func TestPostBySlugNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.PostBySlug(context.Background(), "missing")
	if !errors.Is(err, cms.ErrNotFound) {
		t.Fatalf("err = %v, want cms.ErrNotFound", err)
	}
}

func TestSavePostKeepsIDForSlug(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := &cms.Post{Slug: "same", Title: "One", Content: "a", Date: day(1)}
	if err := s.SavePost(ctx, first); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	second := &cms.Post{Slug: "same", Title: "Two", Content: "b", Date: day(2)}
	if err := s.SavePost(ctx, second); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if first.DatabaseID != second.DatabaseID {
		t.Errorf("ids = %d and %d, want equal", first.DatabaseID, second.DatabaseID)
	}
	got, err := s.PostBySlug(ctx, "same")
	if err != nil {
		t.Fatalf("PostBySlug failed: %v", err)
	}
	if got.Title != "Two" {
		t.Errorf("Title = %q, want Two", got.Title)
	}
}

func TestPostsByCategoryAndRecent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tech := cms.Category{DatabaseID: 3, Name: "Tech", Slug: "tech"}
	for i, slug := range []string{"old", "new", "mid"} {
		p := &cms.Post{Slug: slug, Title: slug, Content: "x", Date: day([]int{1, 20, 10}[i])}
		if slug != "mid" {
			p.Categories = []cms.Category{tech}
		}
		if err := s.SavePost(ctx, p); err != nil {
			t.Fatalf("SavePost(%s) failed: %v", slug, err)
		}
	}

	inTech, err := s.PostsByCategory(ctx, 3)
	if err != nil {
		t.Fatalf("PostsByCategory failed: %v", err)
	}
	if len(inTech) != 2 || inTech[0].Slug != "new" || inTech[1].Slug != "old" {
		t.Errorf("PostsByCategory = %v, want [new old]", slugs(inTech))
	}

	recent, err := s.RecentPosts(ctx, 2)
	if err != nil {
		t.Fatalf("RecentPosts failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Slug != "new" || recent[1].Slug != "mid" {
		t.Errorf("RecentPosts = %v, want [new mid]", slugs(recent))
	}
}

func TestDeletePost(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	p := &cms.Post{Slug: "gone", Title: "Gone", Content: "x", Date: day(1),
		Categories: []cms.Category{{DatabaseID: 1, Name: "A", Slug: "a"}}}
	if err := s.SavePost(ctx, p); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if err := s.DeletePost(ctx, "gone"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.PostBySlug(ctx, "gone"); !errors.Is(err, cms.ErrNotFound) {
		t.Errorf("err = %v, want cms.ErrNotFound", err)
	}
	posts, err := s.PostsByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("PostsByCategory failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("PostsByCategory = %v, want none", slugs(posts))
	}
}

func slugs(posts []cms.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}
