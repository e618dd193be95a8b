package headpress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/headpress/cms"
)

// Store is a SQLite mirror of CMS content. It implements cms.Source so the
// server can run without a WordPress endpoint.
type Store struct {
	db *sql.DB
}

var _ cms.Source = (*Store)(nil)

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the importer write while the server reads; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    meta_title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    date TEXT NOT NULL,
    modified TEXT NOT NULL,
    author_name TEXT NOT NULL DEFAULT '',
    author_slug TEXT NOT NULL DEFAULT '',
    author_avatar TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    image_caption TEXT NOT NULL DEFAULT '',
    image_alt TEXT NOT NULL DEFAULT '',
    image_width INTEGER NOT NULL DEFAULT 0,
    image_height INTEGER NOT NULL DEFAULT 0,
    image_srcset TEXT NOT NULL DEFAULT '',
    image_sizes TEXT NOT NULL DEFAULT '',
    sticky INTEGER NOT NULL DEFAULT 0,
    canonical TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS posts_date ON posts (date DESC);
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS post_categories (
    post_id INTEGER NOT NULL,
    category_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (post_id, category_id)
);
`)
	return err
}

const postColumns = `p.id, p.slug, p.title, p.meta_title, p.description, p.excerpt, p.content,
	p.date, p.modified, p.author_name, p.author_slug, p.author_avatar,
	p.image_url, p.image_caption, p.image_alt, p.image_width, p.image_height,
	p.image_srcset, p.image_sizes, p.sticky, p.canonical`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (cms.Post, error) {
	var (
		p                              cms.Post
		date, modified                 string
		authorName, authorSlug, avatar string
		imgURL, imgCaption, imgAlt     string
		imgSrcSet, imgSizes            string
		imgWidth, imgHeight, sticky    int
	)
	err := row.Scan(&p.DatabaseID, &p.Slug, &p.Title, &p.MetaTitle, &p.Description, &p.Excerpt, &p.Content,
		&date, &modified, &authorName, &authorSlug, &avatar,
		&imgURL, &imgCaption, &imgAlt, &imgWidth, &imgHeight,
		&imgSrcSet, &imgSizes, &sticky, &p.Canonical)
	if err != nil {
		return cms.Post{}, err
	}
	p.Date = cms.ParseDate(date)
	p.Modified = cms.ParseDate(modified)
	p.IsSticky = sticky == 1
	if authorName != "" {
		p.Author = &cms.Author{Name: authorName, Slug: authorSlug, AvatarURL: avatar}
	}
	if imgURL != "" {
		p.FeaturedImage = &cms.FeaturedImage{
			SourceURL: imgURL,
			Caption:   imgCaption,
			AltText:   imgAlt,
			Width:     imgWidth,
			Height:    imgHeight,
			SrcSet:    imgSrcSet,
			Sizes:     imgSizes,
		}
	}
	return p, nil
}

// PostBySlug returns a post with its categories in saved order.
// cms.ErrNotFound is returned when no post has slug.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*cms.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.slug = ?`, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cms.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Categories, err = s.postCategories(ctx, p.DatabaseID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PostsByCategory returns the posts filed under categoryID, newest first.
// Categories of the returned posts are not loaded.
func (s *Store) PostsByCategory(ctx context.Context, categoryID int) ([]cms.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts p
		JOIN post_categories pc ON pc.post_id = p.id
		WHERE pc.category_id = ?
		ORDER BY p.date DESC`, categoryID)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// RecentPosts returns up to count posts, newest first.
func (s *Store) RecentPosts(ctx context.Context, count int) ([]cms.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts p ORDER BY p.date DESC LIMIT ?`, count)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]cms.Post, error) {
	defer rows.Close()
	var posts []cms.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *Store) postCategories(ctx context.Context, postID int) ([]cms.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT c.id, c.name, c.slug FROM categories c
		JOIN post_categories pc ON pc.category_id = c.id
		WHERE pc.post_id = ?
		ORDER BY pc.position`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []cms.Category
	for rows.Next() {
		var c cms.Category
		if err := rows.Scan(&c.DatabaseID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// SavePost upserts p and its categories. A post or category without a
// DatabaseID keeps the ID already stored for its slug, or gets a new one.
// The assigned IDs are written back into p.
func (s *Store) SavePost(ctx context.Context, p *cms.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if p.DatabaseID == 0 {
		if p.DatabaseID, err = idBySlug(ctx, tx, "posts", p.Slug); err != nil {
			return err
		}
	}

	var author cms.Author
	if p.Author != nil {
		author = *p.Author
	}
	var img cms.FeaturedImage
	if p.FeaturedImage != nil {
		img = *p.FeaturedImage
	}
	sticky := 0
	if p.IsSticky {
		sticky = 1
	}
	modified := p.Modified
	if modified.IsZero() {
		modified = p.Date
	}

	res, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO posts (
		id, slug, title, meta_title, description, excerpt, content, date, modified,
		author_name, author_slug, author_avatar,
		image_url, image_caption, image_alt, image_width, image_height, image_srcset, image_sizes,
		sticky, canonical
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullID(p.DatabaseID), p.Slug, p.Title, p.MetaTitle, p.Description, p.Excerpt, p.Content,
		formatTime(p.Date), formatTime(modified),
		author.Name, author.Slug, author.AvatarURL,
		img.SourceURL, img.Caption, img.AltText, img.Width, img.Height, img.SrcSet, img.Sizes,
		sticky, p.Canonical)
	if err != nil {
		return fmt.Errorf("save post %q: %w", p.Slug, err)
	}
	if p.DatabaseID == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		p.DatabaseID = int(id)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = ?`, p.DatabaseID); err != nil {
		return err
	}
	for i := range p.Categories {
		c := &p.Categories[i]
		if c.DatabaseID == 0 {
			if c.DatabaseID, err = idBySlug(ctx, tx, "categories", c.Slug); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO categories (id, name, slug) VALUES (?, ?, ?)`,
			nullID(c.DatabaseID), c.Name, c.Slug)
		if err != nil {
			return fmt.Errorf("save category %q: %w", c.Slug, err)
		}
		if c.DatabaseID == 0 {
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			c.DatabaseID = int(id)
		}
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO post_categories (post_id, category_id, position) VALUES (?, ?, ?)`,
			p.DatabaseID, c.DatabaseID, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(ctx context.Context, slug string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id IN (SELECT id FROM posts WHERE slug = ?)`, slug); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE slug = ?`, slug); err != nil {
		return err
	}
	return tx.Commit()
}

// idBySlug returns the stored id for slug in table, or 0.
func idBySlug(ctx context.Context, tx *sql.Tx, table, slug string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE slug = ?`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

func nullID(id int) any {
	if id == 0 {
		return nil
	}
	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
