package headpress

import (
	"bytes"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/html"

	"github.com/eringen/headpress/ads"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderWithAds renders cmp into a buffer, runs the ad passes over the parsed
// document and writes the result. Without configured slots it behaves like
// Render.
func RenderWithAds(c echo.Context, cmp templ.Component, cfg ads.Config) error {
	if !cfg.Enabled() {
		return Render(c, cmp)
	}
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return err
	}
	ads.Patch(doc, cfg)

	var out bytes.Buffer
	if err := html.Render(&out, doc.Nodes[0]); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, out.Bytes())
}
