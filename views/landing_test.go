package views

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

var testAssets = Assets{
	Bear:       "/assets/0123456789ab/bear.jpg",
	Stylesheet: "/assets/ba9876543210/landing.css",
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func testConfig(title string) SiteConfig {
	return SiteConfig{Title: title, URL: DefaultURL, Lang: "zh-CN", Variant: MetaFull}
}

func staticCode(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

var reTitle = regexp.MustCompile(`<title>(.*?)</title>`)

func TestLandingTitleIsConfigTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Zustand 中文文档", "Zustand 中文文档"},
		{"Docs", "Docs"},
		{"", ""},
		{"a < b & c", "a &lt; b &amp; c"},
	}
	for _, tt := range tests {
		got := renderString(t, Landing(testConfig(tt.title), testAssets, nil))
		m := reTitle.FindStringSubmatch(got)
		if m == nil {
			t.Fatalf("no <title> in %q", got)
		}
		if m[1] != tt.expected {
			t.Errorf("title for %q = %q, want %q", tt.title, m[1], tt.expected)
		}
	}
}

func TestLandingSingleCharsetAndCanonical(t *testing.T) {
	for _, v := range []MetaVariant{MetaFull, MetaMinimal} {
		cfg := testConfig("Zustand")
		cfg.Variant = v
		got := renderString(t, Landing(cfg, testAssets, nil))
		if n := strings.Count(got, `<meta charset="utf-8"/>`); n != 1 {
			t.Errorf("%s: charset count = %d, want 1", v, n)
		}
		if n := strings.Count(got, "charset"); n != 1 {
			t.Errorf("%s: charset mentions = %d, want 1", v, n)
		}
		if n := strings.Count(got, `<link rel="canonical" href="https://zustand.acebook.cc"/>`); n != 1 {
			t.Errorf("%s: canonical count = %d, want 1", v, n)
		}
		if n := strings.Count(got, `rel="canonical"`); n != 1 {
			t.Errorf("%s: canonical links = %d, want 1", v, n)
		}
	}
}

func TestLandingCharsetComesFirst(t *testing.T) {
	got := renderString(t, Landing(testConfig("Zustand"), testAssets, nil))
	if !strings.Contains(got, `<head><meta charset="utf-8"/>`) {
		t.Errorf("charset should be the first head element: %q", got[:200])
	}
}

func TestLandingNavOrder(t *testing.T) {
	got := renderString(t, Landing(testConfig("anything"), testAssets, nil))
	docs := strings.Index(got, `<a class="p1" href="/docs/intro">中文文档</a>`)
	gh := strings.Index(got, `<a class="p1" href="https://github.com/pmndrs/zustand" target="_blank" rel="noopener noreferrer">官方Github</a>`)
	if docs < 0 || gh < 0 {
		t.Fatalf("nav links missing: %q", got)
	}
	if docs > gh {
		t.Errorf("docs link should render before GitHub link")
	}
}

func TestNavLinks(t *testing.T) {
	links := NavLinks()
	if len(links) != 2 {
		t.Fatalf("len(NavLinks()) = %d, want 2", len(links))
	}
	if links[0].Label != "中文文档" || links[0].Target != "/docs/intro" || links[0].External {
		t.Errorf("first link = %+v", links[0])
	}
	if links[1].Label != "官方Github" || links[1].Target != "https://github.com/pmndrs/zustand" || !links[1].External {
		t.Errorf("second link = %+v", links[1])
	}
}

func TestLandingIdempotent(t *testing.T) {
	cfg := testConfig("Zustand 中文文档")
	code := staticCode(`<pre><code>const useStore = create()</code></pre>`)
	first := renderString(t, Landing(cfg, testAssets, code))
	second := renderString(t, Landing(cfg, testAssets, code))
	if first != second {
		t.Errorf("rendering twice produced different output")
	}
}

func TestLandingImage(t *testing.T) {
	got := renderString(t, Landing(testConfig("Zustand"), testAssets, nil))
	re := regexp.MustCompile(`<img alt="" src="([^"]*)"/>`)
	m := re.FindStringSubmatch(got)
	if m == nil {
		t.Fatalf("image with empty alt not found: %q", got)
	}
	if !strings.HasSuffix(m[1], "bear.jpg") {
		t.Errorf("image src = %q, want suffix bear.jpg", m[1])
	}
}

func TestLandingEmbedsCodeViewer(t *testing.T) {
	code := staticCode(`<pre class="prism-code language-jsx"><code>x</code></pre>`)
	got := renderString(t, Landing(testConfig("Zustand"), testAssets, code))
	want := `<div class="code"><div class="code-container prism-code language-jsx thin-scrollbar"><pre class="prism-code language-jsx"><code>x</code></pre></div></div>`
	if !strings.Contains(got, want) {
		t.Errorf("code viewer block missing: %q", got)
	}
}

func TestLandingEndToEnd(t *testing.T) {
	got := renderString(t, Landing(testConfig("Zustand 中文文档"), testAssets, nil))
	checks := []string{
		`<html lang="zh-CN">`,
		"<title>Zustand 中文文档</title>",
		`<span class="header-left">Zustand</span>`,
		`<footer class="footer"><p>该网站并非官方中文文档</p></footer>`,
		`<meta name="og:image" content="/bear.jpg"/>`,
		`<link rel="stylesheet" href="/assets/ba9876543210/landing.css"/>`,
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHeadTagsVariants(t *testing.T) {
	full := HeadTags(MetaFull)
	minimal := HeadTags(MetaMinimal)
	if len(full) != len(minimal)+1 {
		t.Fatalf("full has %d tags, minimal %d", len(full), len(minimal))
	}
	count := func(tags []MetaTag, property string) int {
		n := 0
		for _, tag := range tags {
			if tag.Property == property {
				n++
			}
		}
		return n
	}
	if n := count(full, "og:description"); n != 2 {
		t.Errorf("full og:description count = %d, want 2", n)
	}
	if n := count(minimal, "og:description"); n != 1 {
		t.Errorf("minimal og:description count = %d, want 1", n)
	}
	if got := HeadTags("bogus"); len(got) != len(full) {
		t.Errorf("unknown variant should fall back to full")
	}
	last := full[len(full)-1]
	if last.Name != "keywords" || !strings.HasPrefix(last.Content, "zustand, react") {
		t.Errorf("last tag = %+v, want keywords", last)
	}
}

func TestNotFoundKeepsChrome(t *testing.T) {
	got := renderString(t, NotFound(testConfig("Zustand 中文文档"), testAssets))
	if !strings.Contains(got, "<title>404 | Zustand 中文文档</title>") {
		t.Errorf("404 title missing: %q", got)
	}
	if !strings.Contains(got, Disclaimer) {
		t.Errorf("404 page should keep the footer")
	}
	if strings.Contains(got, "<img") {
		t.Errorf("404 page should not render the hero image")
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	got := WebsiteJsonLD(testConfig("Zustand 中文文档"))
	if !strings.Contains(got, `"@type":"WebSite"`) {
		t.Errorf("missing WebSite type: %s", got)
	}
	if !strings.Contains(got, `"url":"https://zustand.acebook.cc"`) {
		t.Errorf("missing url: %s", got)
	}
	if !strings.Contains(got, `"inLanguage":"zh-CN"`) {
		t.Errorf("missing inLanguage: %s", got)
	}
}
