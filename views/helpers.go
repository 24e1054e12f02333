package views

import (
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Title,
		"url":         buildURL(cfg.URL),
		"description": description,
	}
	if cfg.Lang != "" {
		data["inLanguage"] = cfg.Lang
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// writer accumulates the first write error so templates can emit markup
// without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// text writes s HTML-escaped.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) meta(t MetaTag) {
	w.raw("<meta")
	switch {
	case t.Charset != "":
		w.attr("charset", t.Charset)
		w.raw("/>")
		return
	case t.Property != "":
		w.attr("property", t.Property)
	default:
		w.attr("name", t.Name)
	}
	w.attr("content", t.Content)
	w.raw("/>")
}

func (w *writer) link(l NavLink) {
	w.raw(`<a class="p1"`)
	w.attr("href", l.Target)
	if l.External {
		w.raw(` target="_blank" rel="noopener noreferrer"`)
	}
	w.raw(">")
	w.text(l.Label)
	w.raw("</a>")
}
