package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/icon"
	"finitefield.org/strategy-report/internal/report/richtext"
)

type panelStyle struct {
	container  string
	inner      string
	eyebrow    string
	eyebrowRow string
	heading    string
	body       string
	bullet     string
	bulletText string
	tag        string
	tile       string
	tileIcon   string
	decoration string
}

var panelStyles = map[string]panelStyle{
	"navy": {
		container:  "bg-[#0F172A] rounded-[48px] p-12 md:p-20 text-white relative overflow-hidden flex flex-col justify-center",
		inner:      "relative z-10",
		eyebrow:    "text-indigo-400 font-black uppercase tracking-widest text-sm mb-6",
		eyebrowRow: "flex items-center gap-4 mb-8 text-indigo-400",
		heading:    "text-4xl md:text-6xl font-black mb-10 leading-tight",
		body:       "text-slate-300 text-xl font-bold leading-relaxed mb-10",
		bullet:     "w-10 h-10 bg-indigo-500/20 rounded-xl flex items-center justify-center shrink-0 border border-indigo-500/30 text-indigo-400",
		bulletText: "text-xl text-slate-300 font-bold",
		tag:        "bg-white/10 px-6 py-3 rounded-2xl text-indigo-300 font-black text-sm uppercase tracking-widest",
		decoration: "absolute top-0 right-0 w-full h-full bg-[radial-gradient(circle_at_top_right,_var(--tw-gradient-stops))] from-indigo-500/10 via-transparent to-transparent",
	},
	"indigo": {
		container:  "bg-indigo-50 rounded-[48px] p-12 flex flex-col justify-between border border-indigo-100 relative overflow-hidden",
		inner:      "relative z-10",
		eyebrow:    "text-indigo-600 font-black uppercase tracking-widest text-sm mb-6",
		eyebrowRow: "flex items-center gap-4 mb-8 text-indigo-600",
		heading:    "text-4xl md:text-6xl font-black mb-8 text-slate-900 leading-tight",
		body:       "text-slate-600 text-xl font-bold leading-relaxed mb-10",
		bullet:     "w-10 h-10 bg-white rounded-xl flex items-center justify-center shrink-0 border border-indigo-100 text-indigo-600",
		bulletText: "text-xl text-slate-700 font-bold",
		tag:        "bg-white px-6 py-3 rounded-2xl text-indigo-600 font-black text-sm shadow-sm border border-indigo-100 uppercase tracking-widest",
		decoration: "absolute -bottom-20 -right-20 w-80 h-80 bg-white/50 rounded-full blur-[100px]",
	},
	"slate": {
		container:  "bg-slate-900 rounded-[48px] p-12 text-white flex flex-col justify-between group overflow-hidden relative",
		inner:      "relative z-10",
		eyebrow:    "text-indigo-400 font-black uppercase tracking-widest text-sm mb-6",
		eyebrowRow: "flex items-center gap-4 mb-8 text-indigo-400",
		heading:    "text-4xl md:text-5xl font-black mb-8 leading-tight",
		body:       "text-slate-400 text-xl font-medium leading-relaxed mb-12",
		bullet:     "w-10 h-10 bg-indigo-500/20 rounded-xl flex items-center justify-center shrink-0 border border-indigo-500/30 text-indigo-400",
		bulletText: "text-xl text-slate-300 font-bold",
		tag:        "bg-white/10 px-6 py-3 rounded-2xl text-indigo-300 font-black text-sm uppercase tracking-widest",
		decoration: "absolute -bottom-24 -right-24 w-80 h-80 bg-indigo-600/20 rounded-full blur-[100px]",
	},
	"rose": {
		container:  "bg-rose-50 rounded-[48px] p-12 flex flex-col justify-between border border-rose-100",
		eyebrow:    "text-rose-600 font-black uppercase tracking-widest text-sm mb-6",
		eyebrowRow: "flex items-center gap-4 mb-8 text-rose-600",
		heading:    "text-4xl md:text-5xl font-black mb-8 text-slate-900 leading-tight",
		body:       "text-slate-600 text-xl font-medium leading-relaxed mb-12",
		bullet:     "w-10 h-10 bg-white rounded-xl flex items-center justify-center shrink-0 border border-rose-100 text-rose-600",
		bulletText: "text-xl text-slate-700 font-bold",
		tag:        "bg-white px-6 py-3 rounded-2xl text-rose-600 font-black text-sm shadow-sm border border-rose-100 uppercase tracking-widest",
		tile:       "bg-white p-6 rounded-[24px] shadow-sm border border-rose-100 flex flex-col items-center text-center gap-4 hover:shadow-md transition-all group",
		tileIcon:   "w-12 h-12 bg-rose-50 text-rose-600 rounded-xl flex items-center justify-center group-hover:bg-rose-600 group-hover:text-white transition-colors",
	},
}

// PanelProps configures a Panel. Empty lists and strings are omitted.
type PanelProps struct {
	Theme       string
	Eyebrow     string
	EyebrowIcon string
	Heading     []string
	Body        string
	Bullets     []string
	BulletIcon  string
	Tags        []string
	Media       string
	Tiles       []string
	TileIcon    string
}

// Panel renders a large themed feature panel: eyebrow, multi-line heading,
// body copy and any of bullets, tags, a media placeholder or tiles.
func Panel(p PanelProps) g.Node {
	st, ok := panelStyles[p.Theme]
	if !ok {
		st = panelStyles["indigo"]
	}
	return h.Div(
		h.Class(st.container),
		h.Data("panel", p.Theme),
		h.Div(
			g.If(st.inner != "", h.Class(st.inner)),
			panelEyebrow(st, p),
			h.H3(h.Class(st.heading), Lines(p.Heading)),
			g.If(p.Body != "", h.P(h.Class(st.body), richtext.Inline(p.Body))),
			g.If(len(p.Bullets) > 0, h.Div(
				h.Class("space-y-8"),
				g.Map(p.Bullets, func(text string) g.Node {
					return h.Div(
						h.Class("flex gap-6 items-start"),
						h.Div(h.Class(st.bullet), icon.Render(p.BulletIcon, 20, "")),
						h.Span(h.Class(st.bulletText), h.Data("panel-bullet", ""), g.Text(text)),
					)
				}),
			)),
			g.If(len(p.Tags) > 0, h.Div(
				h.Class("flex flex-wrap gap-4"),
				g.Map(p.Tags, func(tag string) g.Node {
					return Tag(st.tag, tag)
				}),
			)),
		),
		g.If(p.Media != "", h.Div(
			h.Class("relative z-10 aspect-video bg-slate-800 rounded-[32px] border border-white/5 flex items-center justify-center italic text-slate-600 group-hover:scale-[1.02] transition-transform duration-500 overflow-hidden font-bold"),
			h.Data("panel-media", ""),
			g.Text(p.Media),
		)),
		g.If(len(p.Tiles) > 0, h.Div(
			h.Class("grid grid-cols-2 gap-6"),
			g.Map(p.Tiles, func(label string) g.Node {
				return h.Div(
					h.Class(st.tile),
					h.Data("panel-tile", ""),
					h.Div(h.Class(st.tileIcon), icon.Render(p.TileIcon, 24, "")),
					h.Span(h.Class("font-black text-slate-700 tracking-tight uppercase text-xs"), g.Text(label)),
				)
			}),
		)),
		g.If(st.decoration != "", h.Div(h.Class(st.decoration))),
	)
}

func panelEyebrow(st panelStyle, p PanelProps) g.Node {
	if p.Eyebrow == "" {
		return nil
	}
	if p.EyebrowIcon == "" {
		return h.H4(h.Class(st.eyebrow), g.Text(p.Eyebrow))
	}
	return h.Div(
		h.Class(st.eyebrowRow),
		icon.Render(p.EyebrowIcon, 32, ""),
		h.Span(h.Class("font-black uppercase tracking-[0.2em] text-sm"), g.Text(p.Eyebrow)),
	)
}

// Tag renders a pill label.
func Tag(class, text string) g.Node {
	return h.Span(h.Class(class), h.Data("tag", ""), g.Text(text))
}

// Lines joins text lines with explicit line breaks.
func Lines(lines []string) g.Node {
	nodes := make(g.Group, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		nodes = append(nodes, g.Text(line))
	}
	return nodes
}
