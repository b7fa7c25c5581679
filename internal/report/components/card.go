package components

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/icon"
	"finitefield.org/strategy-report/internal/report/motion"
	"finitefield.org/strategy-report/internal/report/richtext"
)

// DefaultPlaceholder is shown when a card has no placeholder caption.
const DefaultPlaceholder = "可视化设计稿预留"

// CardProps configures a Card.
type CardProps struct {
	Title            string
	Description      string
	ImagePlaceholder string
	Badge            string
	Icon             string
	Delay            time.Duration
}

// Card renders an image placeholder with an optional badge overlay, followed
// by the title and description.
func Card(p CardProps) g.Node {
	placeholder := p.ImagePlaceholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return h.Div(
		h.Class("group bg-white rounded-[32px] shadow-sm border border-slate-100 overflow-hidden transition-all hover:shadow-2xl hover:shadow-indigo-50 hover:-translate-y-2 flex flex-col h-full"),
		h.Data("card", ""),
		motion.CardEntrance(p.Delay).Attrs(),
		h.Div(
			h.Class("relative h-64 bg-slate-50 overflow-hidden flex items-center justify-center p-8"),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-slate-50 to-indigo-50/30")),
			h.Div(
				h.Class("relative z-10 flex flex-col items-center text-center"),
				g.If(p.Icon != "", h.Div(
					h.Class("text-indigo-600 mb-4 group-hover:scale-110 transition-transform duration-500"),
					icon.Render(p.Icon, 48, ""),
				)),
				h.Div(
					h.Class("text-slate-400 italic text-sm font-medium px-4"),
					h.Data("card-placeholder", ""),
					g.Text(placeholder),
				),
			),
			g.If(p.Badge != "", h.Div(
				h.Class("absolute top-6 right-6 bg-slate-900 text-white text-[10px] font-black px-3 py-1.5 rounded-full shadow-lg uppercase tracking-widest"),
				h.Data("card-badge", ""),
				g.Text(p.Badge),
			)),
		),
		h.Div(
			h.Class("p-10 flex flex-col flex-grow"),
			h.H3(h.Class("text-2xl font-black text-slate-900 mb-4 tracking-tight"), g.Text(p.Title)),
			h.P(h.Class("text-slate-600 leading-relaxed text-lg font-medium"), richtext.Inline(p.Description)),
		),
	)
}
