package headpress

import (
	"go.uber.org/zap"

	"github.com/eringen/headpress/ads"
	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/seo"
)

// DefaultRedirectReferer is the referral source whose visitors are sent back
// to the WordPress front end.
const DefaultRedirectReferer = "https://l.facebook.com/"

// SiteConfig holds all configuration for a headpress site.
type SiteConfig struct {
	Name            string // Site name (default "Blog")
	URL             string // Canonical URL (default "http://localhost:3000")
	Description     string // Site description for meta tags
	Language        string // html lang (default "en")
	TwitterUsername string

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite mirror path (default "data/headpress.db")
	StaticDir    string // Static assets served under /public (default "public")

	GraphQLEndpoint  string // WPGraphQL endpoint; empty serves from the SQLite mirror
	SEOPluginEnabled bool   // Yoast SEO data available on the endpoint

	RedirectDomain  string // Empty disables the referral redirect
	RedirectReferer string // default DefaultRedirectReferer

	PostsPrerenderCount int // Recent posts listed in the sitemap and feed (default 5)
	RelatedPostsCount   int // default cms.DefaultRelatedCount

	Ads ads.Config
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/headpress.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.RedirectReferer == "" {
		c.RedirectReferer = DefaultRedirectReferer
	}
	if c.PostsPrerenderCount <= 0 {
		c.PostsPrerenderCount = 5
	}
	if c.RelatedPostsCount <= 0 {
		c.RelatedPostsCount = cms.DefaultRelatedCount
	}
}

// Site returns the values page metadata falls back to.
func (c SiteConfig) Site() seo.Site {
	return seo.Site{
		Name:            c.Name,
		URL:             c.URL,
		Description:     c.Description,
		Language:        c.Language,
		TwitterUsername: c.TwitterUsername,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSource serves posts from src instead of the configured endpoint or
// the SQLite mirror.
func WithSource(src cms.Source) Option {
	return func(a *App) {
		a.Source = src
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
