package landing

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemapURLs lists the landing page and, when this server also hosts the
// docs tree, the docs entry point.
func (a *App) sitemapURLs() []sitemapURL {
	urls := []sitemapURL{
		{Loc: AbsURL(a.Config.URL, "/"), ChangeFreq: "weekly", Priority: "1.0"},
	}
	if a.Config.DocsDir != "" {
		urls = append(urls, sitemapURL{Loc: AbsURL(a.Config.URL, "docs/intro"), ChangeFreq: "weekly", Priority: "0.8"})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
