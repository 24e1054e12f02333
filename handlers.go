package landing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acebook/zustand-landing/views"
)

func (a *App) handleHome(c echo.Context) error {
	page, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (a *App) handleAsset(c echo.Context) error {
	asset, ok := a.Assets.Lookup(c.Param("hash"), c.Param("name"))
	if !ok {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, asset.ContentType, asset.Body)
}

// handleOGImage serves the bear image at the fixed og:image path.
func (a *App) handleOGImage(c echo.Context) error {
	return c.Blob(http.StatusOK, a.Assets.Bear.ContentType, a.Assets.Bear.Body)
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /metrics\n\nSitemap: %s\n", AbsURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// Error pages must not inherit the route's cache policy.
	c.Response().Header().Set("Cache-Control", "no-store")

	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.View(), a.Assets.View()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().
			Err(err).
			Str(FieldFunc, "landing.httpErrorHandler").
			Str(FieldRequestID, c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("uri", c.Request().RequestURI).
			Msg("server error")
		_ = RenderStatus(c, code, views.ServerError(a.Config.View(), a.Assets.View()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
