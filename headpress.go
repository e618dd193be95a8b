// Package headpress serves single blog posts from a headless CMS with Go,
// Echo, and templ.
//
// Posts come from a WordPress GraphQL endpoint or a local SQLite mirror.
// Each request resolves the slug, renders the page server-side and injects
// the configured ad slots into the rendered document before it is written.
package headpress

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/seo"
	"github.com/eringen/headpress/views"
)

// ViewFuncs holds the components the handlers render. DefaultViews returns
// the built-in set; callers may swap any of them.
type ViewFuncs struct {
	Post        func(page views.PostPage) templ.Component
	NotFound    func(site seo.Site) templ.Component
	ServerError func(site seo.Site) templ.Component
}

// DefaultViews returns the components from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Post:        views.Post,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central headpress application. It wires together the content
// source, loader, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Source cms.Source
	Store  *Store
	Views  ViewFuncs
	Logger *zap.Logger

	loader       *PostLoader
	customRoutes []func(*App)
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Logger: zap.NewNop(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init resolves the content source and sets up middleware and routes. Start
// calls it; tests call it directly and drive a.Echo as an http.Handler.
func (a *App) Init() error {
	if a.Source == nil {
		switch {
		case a.Config.GraphQLEndpoint != "":
			a.Source = cms.NewClient(a.Config.GraphQLEndpoint, cms.WithSEOPlugin(a.Config.SEOPluginEnabled))
		default:
			store, err := NewStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("headpress: init store: %w", err)
			}
			a.Store = store
			a.Source = store
		}
	}

	a.loader = &PostLoader{
		Source:          a.Source,
		RedirectDomain:  a.Config.RedirectDomain,
		RedirectReferer: a.Config.RedirectReferer,
		RelatedCount:    a.Config.RelatedPostsCount,
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.Bool("graphql", a.Config.GraphQLEndpoint != ""))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealthz)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/posts/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	var err error
	if a.Store != nil {
		err = a.Store.Close()
	}
	_ = a.Logger.Sync()
	return err
}
