package headpress

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	res, err := a.loader.Load(c.Request().Context(), slug, c.Request().Referer())
	if err != nil {
		return err
	}
	switch {
	case res.Redirect != "":
		return c.Redirect(http.StatusTemporaryRedirect, res.Redirect)
	case res.NotFound:
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.Site()))
	}
	page := BuildPostPage(a.Config, res.Props)
	return RenderWithAds(c, a.Views.Post(page), a.Config.Ads)
}

// handleHome sends visitors of the bare domain to the WordPress front end.
// This server only renders post pages.
func (a *App) handleHome(c echo.Context) error {
	if a.Config.RedirectDomain == "" {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusMovedPermanently, a.Config.RedirectDomain)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Source.RecentPosts(c.Request().Context(), a.Config.PostsPrerenderCount)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Source.RecentPosts(c.Request().Context(), a.Config.PostsPrerenderCount)
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "robots.txt"))
}

func handleHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config.Site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
