package headpress

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePost = `---
title: Hello World
date: 2024-03-01T10:00:00
categories: [Tech, Go Lang]
author:
  name: Ada Lovelace
image:
  src: /public/img/hero.png
  alt: hero
---
# Heading

Some *markdown* text.
`

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestParsePostMarkdown(t *testing.T) {
	static := t.TempDir()
	writePNG(t, filepath.Join(static, "img", "hero.png"), 64, 32)
	im := NewImporter(nil, static, nil)

	post, err := im.ParsePost("hello-world.md", []byte(samplePost))
	require.NoError(t, err)
	require.Equal(t, "hello-world", post.Slug)
	require.Equal(t, "Hello World", post.Title)
	require.Contains(t, post.Content, `<h1 id="heading">Heading</h1>`)
	require.Contains(t, post.Content, "<em>markdown</em>")
	require.Equal(t, 2024, post.Date.Year())
	require.Len(t, post.Categories, 2)
	require.Equal(t, "go-lang", post.Categories[1].Slug)
	require.Equal(t, "ada-lovelace", post.Author.Slug)
	require.NotNil(t, post.FeaturedImage)
	require.Equal(t, 64, post.FeaturedImage.Width)
	require.Equal(t, 32, post.FeaturedImage.Height)
}

func TestParsePostHTMLFormat(t *testing.T) {
	im := NewImporter(nil, t.TempDir(), nil)

	post, err := im.ParsePost("x.md", []byte("---\nslug: raw\nformat: html\n---\n<p>as is</p>\n"))
	require.NoError(t, err)
	require.Equal(t, "raw", post.Slug)
	require.Equal(t, "<p>as is</p>\n", post.Content)
}

func TestParsePostRejectsUnknownFormat(t *testing.T) {
	im := NewImporter(nil, t.TempDir(), nil)

	_, err := im.ParsePost("x.md", []byte("---\nformat: rst\n---\nbody\n"))
	require.Error(t, err)
}

func TestParsePostMissingImageKeepsZeroSize(t *testing.T) {
	im := NewImporter(nil, t.TempDir(), nil)

	post, err := im.ParsePost("x.md", []byte("---\nimage:\n  src: /public/nope.webp\n---\nbody\n"))
	require.NoError(t, err)
	require.Zero(t, post.FeaturedImage.Width)
}

func TestImportDir(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello-world.md"), []byte(samplePost), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	n, err := NewImporter(s, t.TempDir(), nil).ImportDir(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := s.PostBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	require.Equal(t, "Hello World", got.Title)
	require.Len(t, got.Categories, 2)
	require.Equal(t, "Tech", got.Categories[0].Name)
}
