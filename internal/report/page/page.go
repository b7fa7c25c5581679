// Package page assembles the report document from the content table.
package page

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/icon"
	"finitefield.org/strategy-report/internal/report/motion"
	"finitefield.org/strategy-report/internal/report/seo"
)

// TailwindCDN is the runtime stylesheet compiler used when Options.Tailwind is set.
const TailwindCDN = "https://cdn.tailwindcss.com"

// Options controls document-level rendering.
type Options struct {
	// BaseURL is the absolute URL the page is published under; used for
	// canonical and structured data links. Optional.
	BaseURL string
	// AssetPrefix is prepended to static asset names. Defaults to "/static/".
	AssetPrefix string
	// Tailwind loads the Tailwind runtime so utility classes resolve without a build step.
	Tailwind bool
}

func (o Options) assetPrefix() string {
	if o.AssetPrefix == "" {
		return "/static/"
	}
	if !strings.HasSuffix(o.AssetPrefix, "/") {
		return o.AssetPrefix + "/"
	}
	return o.AssetPrefix
}

// Document returns the complete HTML document for report.
func Document(report content.Report, opts Options) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(langAttr(report)),
			h.Class("scroll-smooth"),
			head(report, opts),
			h.Body(
				h.Class("min-h-screen bg-[#FDFDFF] text-slate-900 font-sans selection:bg-indigo-100 selection:text-indigo-900"),
				header(report),
				h.Main(
					h.Class("max-w-7xl mx-auto px-6 py-24"),
					hero(report.Hero),
					g.Map(report.Sections, section),
				),
				footer(report),
				h.Script(h.Src(opts.assetPrefix()+"reveal.js"), h.Defer()),
			),
		),
	)
}

// Component adapts the document to templ so it can be served by templ.Handler
// or rendered into any writer.
func Component(report content.Report, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return Document(report, opts).Render(w)
	})
}

// Render writes the document for report to w.
func Render(ctx context.Context, w io.Writer, report content.Report, opts Options) error {
	return Component(report, opts).Render(ctx, w)
}

// RenderBytes renders the document and verifies its in-page anchors.
func RenderBytes(ctx context.Context, report content.Report, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(ctx, &buf, report, opts); err != nil {
		return nil, err
	}
	if err := CheckAnchors(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Language returns the canonical language tag of the report, falling back to
// Simplified Chinese.
func Language(report content.Report) language.Tag {
	tag, err := report.Tag()
	if err != nil {
		return language.SimplifiedChinese
	}
	return tag
}

func langAttr(report content.Report) string {
	return Language(report).String()
}

func head(report content.Report, opts Options) g.Node {
	meta := report.Meta
	base := strings.TrimSpace(opts.BaseURL)
	parts := make([]seo.PagePart, 0, len(report.Sections))
	for _, s := range report.Sections {
		parts = append(parts, seo.PagePart{Name: s.Title, Anchor: s.ID})
	}
	tags := seo.Meta{
		Title:       meta.Title,
		Description: meta.Description,
		Canonical:   base,
		OG: seo.OpenGraph{
			URL:      base,
			SiteName: meta.SiteName,
			Image:    meta.OGImage,
			Locale:   strings.ReplaceAll(langAttr(report), "-", "_"),
		},
		Twitter: seo.Twitter{Image: meta.OGImage},
		JSONLD: []map[string]any{
			seo.Organization(meta.Organization, base, ""),
			seo.WebPage(meta.Title, meta.Description, base, langAttr(report), parts),
		},
	}
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(meta.Title)),
		tags.Tags(),
		g.If(opts.Tailwind, h.Script(h.Src(TailwindCDN))),
		h.StyleEl(g.Raw(baseStyles)),
		h.NoScript(h.StyleEl(g.Raw(noScriptStyles))),
	)
}

const baseStyles = `html{scroll-behavior:smooth}` +
	`[data-motion]{will-change:opacity,transform}` +
	`@media (prefers-reduced-motion:reduce){[data-motion]{opacity:1!important;transform:none!important;transition:none!important}}`

const noScriptStyles = `[data-motion]{opacity:1!important;transform:none!important}`

func header(report content.Report) g.Node {
	return h.Header(
		h.Class("sticky top-0 z-50 bg-white/70 backdrop-blur-xl border-b border-slate-100 px-6 py-5"),
		h.Div(
			h.Class("max-w-7xl mx-auto flex justify-between items-center"),
			h.Div(
				h.Class("flex items-center gap-3"),
				h.Div(
					h.Class("w-10 h-10 bg-indigo-600 rounded-xl flex items-center justify-center text-white shadow-lg shadow-indigo-200"),
					icon.Render(report.Brand.Icon, 24, ""),
				),
				h.Span(
					h.Class("font-black text-2xl tracking-tighter text-slate-900 uppercase"),
					g.Text(report.Brand.Name+" "),
					h.Span(h.Class("text-indigo-600"), g.Text(report.Brand.Accent)),
				),
			),
			h.Nav(
				h.Class("hidden lg:flex gap-10 text-xs font-black text-slate-500 uppercase tracking-[0.2em]"),
				h.Data("nav", "header"),
				g.Map(report.Nav, func(link content.NavLink) g.Node {
					return h.A(h.Href(link.Href()), h.Class("hover:text-indigo-600 transition-colors"), g.Text(link.Label))
				}),
			),
			h.A(
				h.Href(report.Header.CTA.Href()),
				h.ID("header-cta"),
				h.Data("cta", "primary"),
				h.Class("bg-slate-900 text-white px-8 py-3 rounded-full text-xs font-black uppercase tracking-widest hover:bg-indigo-600 transition-all shadow-md"),
				g.Text(report.Header.CTA.Label),
			),
		),
	)
}

func hero(hr content.Hero) g.Node {
	return h.Section(
		h.Class("text-center mb-40 relative"),
		h.Data("hero", ""),
		h.Div(h.Class("absolute top-0 left-1/2 -translate-x-1/2 w-[1000px] h-[600px] bg-indigo-50 rounded-full blur-[140px] opacity-40 -z-10")),
		h.Div(
			motion.HeroEntrance().Attrs(),
			h.Div(
				h.Class("inline-block px-6 py-2 bg-indigo-50 text-indigo-600 rounded-full text-xs font-black uppercase tracking-[0.3em] mb-10"),
				g.Text(hr.Eyebrow),
			),
			h.H1(
				h.Class("text-6xl md:text-9xl font-black text-slate-900 mb-10 tracking-tighter leading-[0.85]"),
				g.Text(hr.Heading+" "),
				h.Br(),
				h.Span(
					h.Class("text-transparent bg-clip-text bg-gradient-to-r from-indigo-600 via-violet-600 to-indigo-600"),
					g.Text(hr.HeadingAccent),
				),
			),
			h.P(
				h.Class("text-xl md:text-3xl text-slate-500 max-w-4xl mx-auto leading-relaxed mb-16 font-medium tracking-tight"),
				g.Text(hr.Lead),
			),
			h.Div(
				h.Class("flex flex-wrap justify-center gap-8"),
				heroControl(hr.Primary, "hero-primary", "bg-indigo-600 text-white px-12 py-5 rounded-full font-black hover:bg-indigo-700 transition-all flex items-center gap-3 shadow-2xl shadow-indigo-100 hover:scale-105"),
				heroControl(hr.Secondary, "hero-secondary", "bg-white text-slate-900 border-2 border-slate-100 px-12 py-5 rounded-full font-black hover:bg-slate-50 transition-all flex items-center gap-3 hover:scale-105 shadow-sm"),
			),
		),
	)
}

func heroControl(cta content.CTA, id, class string) g.Node {
	if cta.Label == "" {
		return nil
	}
	children := g.Group{
		h.ID(id),
		h.Class(class),
		g.Text(cta.Label + " "),
		icon.Render(cta.Icon, 24, ""),
	}
	if cta.IsLink() {
		return h.A(h.Href("#"+cta.Target), children)
	}
	return h.Button(h.Type("button"), children)
}

func footer(report content.Report) g.Node {
	f := report.Footer
	return h.Footer(
		h.Class("bg-white py-24 px-6 border-t border-slate-100"),
		h.Div(
			h.Class("max-w-7xl mx-auto flex flex-col md:flex-row justify-between items-center gap-16"),
			h.Div(
				h.Class("flex flex-col items-center md:items-start gap-6"),
				h.Div(
					h.Class("flex items-center gap-4"),
					h.Div(
						h.Class("w-12 h-12 bg-slate-900 rounded-2xl flex items-center justify-center text-white shadow-xl"),
						icon.Render(f.Icon, 28, ""),
					),
					h.Span(h.Class("font-black text-3xl tracking-tighter text-slate-900"), g.Text(f.Title)),
				),
				h.P(h.Class("text-slate-500 font-bold text-xl max-w-sm text-center md:text-left leading-relaxed"), g.Text(f.Tagline)),
			),
			h.Div(
				h.Class("flex gap-20"),
				g.Map(f.Groups, func(group content.LinkGroup) g.Node {
					return h.Nav(
						h.Class("flex flex-col gap-6"),
						h.Data("nav", "footer"),
						h.Span(h.Class("font-black text-xs uppercase tracking-[0.3em] text-slate-400"), g.Text(group.Title)),
						g.Map(group.Links, func(link content.NavLink) g.Node {
							return h.A(
								h.Href(link.Href()),
								h.Class("font-black text-slate-900 hover:text-indigo-600 transition-colors uppercase tracking-widest text-sm"),
								g.Text(link.Label),
							)
						}),
					)
				}),
			),
		),
		h.Div(
			h.Class("max-w-7xl mx-auto mt-24 pt-12 border-t border-slate-100 flex flex-col md:flex-row justify-between items-center gap-8"),
			h.P(h.Class("text-slate-400 font-black text-sm tracking-[0.2em] uppercase"), g.Text(f.Copyright)),
			h.Div(
				h.Class("flex gap-10"),
				g.Map(f.Social, func(name string) g.Node {
					return icon.Render(name, 24, "text-slate-400 hover:text-indigo-600 cursor-pointer transition-colors")
				}),
			),
		),
	)
}
