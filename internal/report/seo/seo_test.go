package seo

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestTagsRenderOpenGraphAndJSONLD(t *testing.T) {
	t.Parallel()

	meta := Meta{
		Title:       "云码通转型与 AI 超级应用",
		Description: "重构服务关系，定义未来生态。",
		Canonical:   "https://report.example.com/",
		OG:          OpenGraph{SiteName: "AI Strategic Report", Locale: "zh_CN"},
		JSONLD: []map[string]any{
			Organization("AI Strategy Group", "https://report.example.com/", ""),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, meta.Tags().Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	require.Equal(t, meta.Description, doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, meta.Title, doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	require.Equal(t, "website", doc.Find(`meta[property="og:type"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find(`meta[property="og:image"]`).Length(), "empty values are omitted")
	require.Equal(t, "summary_large_image", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	require.Equal(t, meta.Canonical, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	script := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 1, script.Length())
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(script.Text()), &payload))
	require.Equal(t, "Organization", payload["@type"])
}

func TestWebPageParts(t *testing.T) {
	t.Parallel()

	page := WebPage("Report", "", "https://report.example.com/", "zh-CN", []PagePart{
		{Name: "区域", Anchor: "regional"},
		{Name: "企业", Anchor: "enterprise"},
	})
	require.Equal(t, "zh-CN", page["inLanguage"])
	parts, ok := page["hasPart"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, parts, 2)
	require.Equal(t, "https://report.example.com/#enterprise", parts[1]["url"])
	_, hasDescription := page["description"]
	require.False(t, hasDescription)
}

func TestJSONEscapesHTML(t *testing.T) {
	t.Parallel()

	out := JSON(map[string]any{"name": "</script><b>"})
	require.NotContains(t, out, "</script>")
	require.Equal(t, "", JSON(map[string]any{"bad": make(chan int)}))
}
