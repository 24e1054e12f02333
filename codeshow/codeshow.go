// Package codeshow renders the markdown-authored code sample shown on the
// landing page. The markdown is converted once; the resulting component
// writes the same bytes on every render.
package codeshow

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

//go:embed code.md
var defaultSample []byte

var reLang = regexp.MustCompile(`^[A-Za-z0-9_+-]+$`)

// Default returns the embedded code sample.
func Default() []byte {
	return bytes.Clone(defaultSample)
}

// Load reads a code sample from path. An empty path returns the embedded
// sample.
func Load(path string) ([]byte, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codeshow: read sample: %w", err)
	}
	return b, nil
}

// Render converts src to HTML and returns it as a static component.
func Render(src []byte) (templ.Component, error) {
	var buf bytes.Buffer
	if err := Convert(&buf, src); err != nil {
		return nil, err
	}
	html := buf.Bytes()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write(html)
		return err
	}), nil
}

// Convert writes the HTML representation of src to w.
func Convert(w io.Writer, src []byte) error {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(codeBlockRenderer{}, 100)),
		),
	)
	if err := md.Convert(src, w); err != nil {
		return fmt.Errorf("codeshow: convert: %w", err)
	}
	return nil
}

// codeBlockRenderer emits code blocks with the prism class names the
// stylesheet targets.
type codeBlockRenderer struct{}

func (r codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}
	lang := string(n.Language(source))
	if !reLang.MatchString(lang) {
		lang = ""
	}
	openCode(w, lang)
	writeLines(w, source, n)
	return ast.WalkContinue, nil
}

func (r codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}
	openCode(w, "")
	writeLines(w, source, node)
	return ast.WalkContinue, nil
}

func openCode(w util.BufWriter, lang string) {
	if lang == "" {
		_, _ = w.WriteString(`<pre class="prism-code"><code>`)
		return
	}
	_, _ = w.WriteString(`<pre class="prism-code language-` + lang + `"><code class="language-` + lang + `">`)
}

func writeLines(w util.BufWriter, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
}
