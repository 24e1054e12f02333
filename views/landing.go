package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Landing renders the complete landing page document. code is the
// code-sample viewer block; a nil code renders an empty viewer.
func Landing(cfg SiteConfig, assets Assets, code templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(ctx, w, cfg, assets, cfg.Title, func(ctx context.Context, out *writer) {
			out.raw(`<img alt=""`)
			out.attr("src", assets.Bear)
			out.raw("/>")
			out.raw(`<div class="container-inset">`)
			header(out)
			out.raw(`<div class="code"><div class="code-container prism-code language-jsx thin-scrollbar">`)
			if code != nil && out.err == nil {
				out.err = code.Render(ctx, out.w)
			}
			out.raw("</div></div>")
			footer(out)
			out.raw("</div>")
		})
	})
}

// NotFound renders the 404 page inside the landing chrome.
func NotFound(cfg SiteConfig, assets Assets) templ.Component {
	return errorPage(cfg, assets, "404", "页面不存在")
}

// ServerError renders the 500 page inside the landing chrome.
func ServerError(cfg SiteConfig, assets Assets) templ.Component {
	return errorPage(cfg, assets, "500", "服务器出错了，请稍后再试")
}

func errorPage(cfg SiteConfig, assets Assets, code, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(ctx, w, cfg, assets, code+" | "+cfg.Title, func(_ context.Context, out *writer) {
			out.raw(`<div class="container-inset">`)
			header(out)
			out.raw(`<section class="error"><h1>`)
			out.text(code)
			out.raw("</h1><p>")
			out.text(message)
			out.raw("</p></section>")
			footer(out)
			out.raw("</div>")
		})
	})
}

func layout(ctx context.Context, w io.Writer, cfg SiteConfig, assets Assets, title string, body func(context.Context, *writer)) error {
	out := &writer{w: w}
	out.raw("<!DOCTYPE html><html")
	if cfg.Lang != "" {
		out.attr("lang", cfg.Lang)
	}
	out.raw("><head>")
	head(out, cfg, assets, title)
	out.raw(`</head><body><main class="container">`)
	body(ctx, out)
	out.raw("</main></body></html>")
	return out.err
}

// head emits the charset first so browsers see it within the first 1024
// bytes; the remaining tags follow HeadTags order.
func head(out *writer, cfg SiteConfig, assets Assets, title string) {
	tags := HeadTags(cfg.Variant)
	for _, t := range tags {
		if t.Charset != "" {
			out.meta(t)
		}
	}
	for _, t := range tags {
		if t.Charset == "" {
			out.meta(t)
		}
	}
	out.raw("<title>")
	out.text(title)
	out.raw("</title>")
	out.raw(`<link rel="canonical"`)
	out.attr("href", cfg.URL)
	out.raw("/>")
	if assets.Stylesheet != "" {
		out.raw(`<link rel="stylesheet"`)
		out.attr("href", assets.Stylesheet)
		out.raw("/>")
	}
	out.raw(`<script type="application/ld+json">`)
	out.raw(WebsiteJsonLD(cfg))
	out.raw("</script>")
}

func header(out *writer) {
	out.raw(`<header class="header"><span class="header-left">`)
	out.text(HeaderLabel)
	out.raw(`</span><nav class="nav">`)
	for _, l := range NavLinks() {
		out.link(l)
	}
	out.raw("</nav></header>")
}

func footer(out *writer) {
	out.raw(`<footer class="footer"><p>`)
	out.text(Disclaimer)
	out.raw("</p></footer>")
}
