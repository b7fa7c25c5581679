package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/icon"
	"finitefield.org/strategy-report/internal/report/richtext"
)

// FeatureItemProps configures a FeatureItem.
type FeatureItemProps struct {
	Icon        string
	Title       string
	Description string
}

// FeatureItem renders an icon tile beside a title and description.
func FeatureItem(p FeatureItemProps) g.Node {
	return h.Div(
		h.Class("flex gap-6 p-8 bg-white rounded-[32px] border border-slate-100 shadow-sm hover:border-indigo-200 transition-all group"),
		h.Data("feature", ""),
		h.Div(
			h.Class("w-16 h-16 bg-indigo-50 text-indigo-600 rounded-2xl flex items-center justify-center shrink-0 group-hover:bg-indigo-600 group-hover:text-white transition-all duration-300 shadow-sm"),
			icon.Render(p.Icon, 32, ""),
		),
		h.Div(
			h.H4(h.Class("text-2xl font-black text-slate-900 mb-2 tracking-tight"), g.Text(p.Title)),
			h.P(h.Class("text-slate-600 leading-relaxed text-lg font-medium"), richtext.Inline(p.Description)),
		),
	)
}

// Accent colours for highlight tiles.
var highlightAccents = map[string]string{
	"indigo": "bg-indigo-50 text-indigo-600 group-hover:bg-indigo-600",
	"violet": "bg-violet-50 text-violet-600 group-hover:bg-violet-600",
	"pink":   "bg-pink-50 text-pink-600 group-hover:bg-pink-600",
	"rose":   "bg-rose-50 text-rose-600 group-hover:bg-rose-600",
}

// HighlightProps configures a Highlight.
type HighlightProps struct {
	Icon        string
	Title       string
	Description string
	Accent      string
}

// Highlight renders a compact card with an accent-coloured icon tile.
func Highlight(p HighlightProps) g.Node {
	accent, ok := highlightAccents[p.Accent]
	if !ok {
		accent = highlightAccents["indigo"]
	}
	return h.Div(
		h.Class("p-10 bg-white rounded-[40px] border border-slate-100 shadow-sm hover:shadow-xl transition-all group"),
		h.Data("highlight", ""),
		h.Div(
			h.Class("w-16 h-16 "+accent+" rounded-2xl flex items-center justify-center mb-8 group-hover:text-white transition-all"),
			icon.Render(p.Icon, 32, ""),
		),
		h.H4(h.Class("text-2xl font-black text-slate-900 mb-4 tracking-tight"), g.Text(p.Title)),
		h.P(h.Class("text-slate-600 text-lg font-medium leading-relaxed"), richtext.Inline(p.Description)),
	)
}
