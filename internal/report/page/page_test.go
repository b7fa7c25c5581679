package page

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/strategy-report/internal/report/content"
)

func renderDefault(t *testing.T) ([]byte, *goquery.Document) {
	t.Helper()

	body, err := RenderBytes(context.Background(), content.Default(), Options{BaseURL: "https://report.example.com/", Tailwind: true})
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return body, doc
}

func TestThreeSectionsInOrder(t *testing.T) {
	t.Parallel()

	body, doc := renderDefault(t)

	var ids []string
	doc.Find("main > section[id]").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	require.Equal(t, []string{content.SectionRegional, content.SectionEnterprise, content.SectionPersonal}, ids)

	anchors, err := ScanAnchors(body)
	require.NoError(t, err)
	require.Equal(t, ids, anchors.SectionOrder)
}

func TestEnterpriseCards(t *testing.T) {
	t.Parallel()

	_, doc := renderDefault(t)

	cards := doc.Find("section#enterprise [data-card]")
	require.Equal(t, 3, cards.Length())

	var titles []string
	cards.Each(func(_ int, card *goquery.Selection) {
		titles = append(titles, card.Find("h3").Text())
		badge := card.Find("[data-card-badge]")
		require.Equal(t, 1, badge.Length())
		require.NotEmpty(t, badge.Text())
	})
	require.Equal(t, []string{"黄小西", "西城家园", "贵人家园"}, titles)

	require.Equal(t, "0", cards.Eq(0).AttrOr("data-motion-delay", ""))
	require.Equal(t, "100", cards.Eq(1).AttrOr("data-motion-delay", ""))
	require.Equal(t, "200", cards.Eq(2).AttrOr("data-motion-delay", ""))

	require.Equal(t, 2, doc.Find("section#enterprise [data-feature]").Length())
	require.Equal(t, "项目范围与迭代逻辑", doc.Find("section#enterprise h3").First().Text())
}

func TestHeaderPrimaryCTATargetsRegional(t *testing.T) {
	t.Parallel()

	_, doc := renderDefault(t)

	cta := doc.Find("header #header-cta")
	require.Equal(t, 1, cta.Length())
	require.Equal(t, "#regional", cta.AttrOr("href", ""))
	require.Equal(t, "立即开始", cta.Text())
	require.Equal(t, 1, doc.Find(cta.AttrOr("href", "")).Length(), "CTA target must exist")

	require.Equal(t, "#regional", doc.Find("#hero-primary").AttrOr("href", ""))
	require.Equal(t, "button", goquery.NodeName(doc.Find("#hero-secondary")))
}

func TestEveryNavLinkResolvesToOneSection(t *testing.T) {
	t.Parallel()

	_, doc := renderDefault(t)

	navLinks := doc.Find(`nav[data-nav] a[href^="#"]`)
	require.Greater(t, navLinks.Length(), 0)

	resolved := 0
	navLinks.Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "#" {
			return
		}
		resolved++
		require.Equal(t, 1, doc.Find("section"+href).Length(), "link %s", href)
	})
	require.Equal(t, 6, resolved, "three header links and three footer links")
	require.Equal(t, 3, doc.Find(`nav[data-nav="header"] a`).Length())
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	report := content.Default()
	first, err := RenderBytes(context.Background(), report, Options{})
	require.NoError(t, err)
	second, err := RenderBytes(context.Background(), report, Options{})
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, doc := renderDefault(t)
	doc.Find("main > section[id]").Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, 1, s.Find("h2").Length())
		require.Equal(t, 1, s.Find("[data-section-icon] svg").Length())
	})
	require.Equal(t, 3, doc.Find("section#enterprise [data-card-placeholder]").Length())
}

func TestDocumentHead(t *testing.T) {
	t.Parallel()

	_, doc := renderDefault(t)

	require.Equal(t, "zh-CN", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, content.Default().Meta.Title, doc.Find("title").Text())
	require.Equal(t, TailwindCDN, doc.Find(`script[src="`+TailwindCDN+`"]`).AttrOr("src", ""))
	require.Equal(t, 1, doc.Find(`script[src="/static/reveal.js"]`).Length())
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Equal(t, "zh_CN", doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""))
}

func TestDocumentWithoutTailwindAndCustomPrefix(t *testing.T) {
	t.Parallel()

	body, err := RenderBytes(context.Background(), content.Default(), Options{AssetPrefix: "static"})
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)

	require.Equal(t, 0, doc.Find(`script[src="`+TailwindCDN+`"]`).Length())
	require.Equal(t, 1, doc.Find(`script[src="static/reveal.js"]`).Length())
}

func TestHeroPlaysOnMountSectionsInView(t *testing.T) {
	t.Parallel()

	_, doc := renderDefault(t)

	require.Equal(t, 1, doc.Find(`[data-hero] [data-motion="mount"]`).Length())
	require.Equal(t, 3, doc.Find(`main > section[data-motion="in-view"]`).Length())
}

func TestCheckAnchorsDetectsBrokenLinks(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckAnchors([]byte(`<a href="#a">a</a><a href="#">top</a><div id="a"></div>`)))

	err := CheckAnchors([]byte(`<a href="#missing">x</a><a href="#dup">y</a><p id="dup"></p><p id="dup"></p>`))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBrokenAnchor))
	require.Contains(t, err.Error(), "#dup (2 matches)")
	require.Contains(t, err.Error(), "#missing (0 matches)")
}

func TestComponentHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Component(content.Default(), Options{}).Render(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())

	require.NoError(t, Component(content.Default(), Options{}).Render(context.Background(), &buf))
	expected, err := RenderBytes(context.Background(), content.Default(), Options{})
	require.NoError(t, err)
	require.Equal(t, expected, buf.Bytes())
}
