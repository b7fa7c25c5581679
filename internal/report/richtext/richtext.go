// Package richtext renders the short inline Markdown used in report copy.
package richtext

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	g "maragu.dev/gomponents"
)

var (
	// Only paragraphs are recognised as blocks, so list, heading and quote
	// markers at the start of a line stay literal text.
	md = goldmark.New(
		goldmark.WithParser(parser.NewParser(
			parser.WithBlockParsers(
				util.Prioritized(parser.NewParagraphParser(), 1000),
			),
			parser.WithInlineParsers(
				util.Prioritized(parser.NewCodeSpanParser(), 100),
				util.Prioritized(parser.NewLinkParser(), 200),
				util.Prioritized(parser.NewEmphasisParser(), 500),
			),
		)),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func inlinePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("strong", "em", "code", "br")
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// HTML converts inline Markdown to sanitised HTML. A single wrapping
// paragraph is removed so the result can sit inside an existing text element.
func HTML(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return inlinePolicy().Sanitize(out), nil
}

// Inline renders src as a node. Conversion failures fall back to escaped text.
func Inline(src string) g.Node {
	out, err := HTML(src)
	if err != nil {
		return g.Text(src)
	}
	return g.Raw(out)
}
