package headpress

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eringen/headpress/cms"
)

const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// postFrontMatter is the YAML header of an importable post file.
type postFrontMatter struct {
	ID          int      `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	MetaTitle   string   `yaml:"meta_title"`
	Description string   `yaml:"description"`
	Excerpt     string   `yaml:"excerpt"`
	Date        string   `yaml:"date"`
	Modified    string   `yaml:"modified"`
	Format      string   `yaml:"format"`
	Sticky      bool     `yaml:"sticky"`
	Canonical   string   `yaml:"canonical"`
	Categories  []string `yaml:"categories"`
	Author      *struct {
		Name   string `yaml:"name"`
		Slug   string `yaml:"slug"`
		Avatar string `yaml:"avatar"`
	} `yaml:"author"`
	Image *struct {
		Src     string `yaml:"src"`
		Alt     string `yaml:"alt"`
		Caption string `yaml:"caption"`
		Width   int    `yaml:"width"`
		Height  int    `yaml:"height"`
		SrcSet  string `yaml:"srcset"`
		Sizes   string `yaml:"sizes"`
	} `yaml:"image"`
}

// Importer loads post files into a Store.
type Importer struct {
	Store     *Store
	StaticDir string
	Logger    *zap.Logger

	md goldmark.Markdown
}

// NewImporter returns an Importer writing into store. staticDir is where
// /public/ image paths resolve for dimension probing.
func NewImporter(store *Store, staticDir string, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		Store:     store,
		StaticDir: staticDir,
		Logger:    logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// ImportDir imports every *.md file in dir, in name order, and returns the
// number of posts saved. It stops at the first file that fails.
func (im *Importer) ImportDir(ctx context.Context, dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0, err
	}
	sort.Strings(matches)
	n := 0
	for _, file := range matches {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return n, err
		}
		post, err := im.ParsePost(filepath.Base(file), data)
		if err != nil {
			return n, err
		}
		if err := im.Store.SavePost(ctx, post); err != nil {
			return n, fmt.Errorf("import %s: %w", file, err)
		}
		im.Logger.Info("imported post", zap.String("file", file), zap.String("slug", post.Slug), zap.Int("id", post.DatabaseID))
		n++
	}
	return n, nil
}

// ParsePost turns one post file into a cms.Post. name is used for error
// messages and, without a slug in the front matter, to derive the slug.
func (im *Importer) ParsePost(name string, data []byte) (*cms.Post, error) {
	fm, body := splitFrontMatter(string(data))
	var front postFrontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return nil, fmt.Errorf("parse front matter %s: %w", name, err)
		}
	}

	slug := strings.TrimSpace(front.Slug)
	if slug == "" {
		slug = Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	}
	if slug == "" {
		return nil, fmt.Errorf("%s: empty slug", name)
	}
	title := strings.TrimSpace(front.Title)
	if title == "" {
		title = slug
	}

	content := body
	switch strings.ToLower(strings.TrimSpace(front.Format)) {
	case "", formatMarkdown:
		var buf bytes.Buffer
		if err := im.md.Convert([]byte(body), &buf); err != nil {
			return nil, fmt.Errorf("render markdown %s: %w", name, err)
		}
		content = buf.String()
	case formatHTML:
	default:
		return nil, fmt.Errorf("%s: unknown format %q", name, front.Format)
	}

	post := &cms.Post{
		DatabaseID:  front.ID,
		Slug:        slug,
		Title:       title,
		MetaTitle:   strings.TrimSpace(front.MetaTitle),
		Description: strings.TrimSpace(front.Description),
		Excerpt:     strings.TrimSpace(front.Excerpt),
		Content:     content,
		Date:        cms.ParseDate(strings.TrimSpace(front.Date)),
		Modified:    cms.ParseDate(strings.TrimSpace(front.Modified)),
		IsSticky:    front.Sticky,
		Canonical:   strings.TrimSpace(front.Canonical),
	}
	for _, c := range front.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		post.Categories = append(post.Categories, cms.Category{Name: c, Slug: Slugify(c)})
	}
	if front.Author != nil && strings.TrimSpace(front.Author.Name) != "" {
		authorSlug := strings.TrimSpace(front.Author.Slug)
		if authorSlug == "" {
			authorSlug = Slugify(front.Author.Name)
		}
		post.Author = &cms.Author{
			Name:      strings.TrimSpace(front.Author.Name),
			Slug:      authorSlug,
			AvatarURL: strings.TrimSpace(front.Author.Avatar),
		}
	}
	if front.Image != nil && strings.TrimSpace(front.Image.Src) != "" {
		img := &cms.FeaturedImage{
			SourceURL: strings.TrimSpace(front.Image.Src),
			AltText:   front.Image.Alt,
			Caption:   front.Image.Caption,
			Width:     front.Image.Width,
			Height:    front.Image.Height,
			SrcSet:    front.Image.SrcSet,
			Sizes:     front.Image.Sizes,
		}
		if img.Width == 0 || img.Height == 0 {
			w, h, ok, err := imageDimensions(im.StaticDir, img.SourceURL)
			if err != nil {
				im.Logger.Warn("image dimensions unavailable", zap.String("file", name), zap.Error(err))
			} else if ok {
				img.Width, img.Height = w, h
			}
		}
		post.FeaturedImage = img
	}
	return post, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return "", input
}
