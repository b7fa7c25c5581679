// Package components holds the presentational building blocks of the report
// page. Every component is a pure function from props to a node tree.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/icon"
	"finitefield.org/strategy-report/internal/report/motion"
)

const defaultGradient = "from-indigo-600 to-violet-600"

// SectionProps configures a Section.
type SectionProps struct {
	ID       string
	Title    string
	Icon     string
	Gradient string
}

// Section renders an anchored region with an icon badge, heading and accent
// underline above its children. The region plays its entrance once, the first
// time it scrolls into view.
func Section(p SectionProps, children ...g.Node) g.Node {
	gradient := p.Gradient
	if gradient == "" {
		gradient = defaultGradient
	}
	return h.Section(
		h.ID(p.ID),
		h.Class("mb-32 scroll-mt-24"),
		h.Data("section", p.ID),
		motion.SectionEntrance().Attrs(),
		h.Div(
			h.Class("flex flex-col md:flex-row md:items-center gap-6 mb-12"),
			h.Div(
				h.Class("p-5 bg-gradient-to-br "+gradient+" text-white rounded-[24px] shadow-xl shadow-indigo-100 shrink-0 self-start"),
				h.Data("section-icon", p.Icon),
				icon.Render(p.Icon, 40, ""),
			),
			h.Div(
				h.H2(
					h.Class("text-3xl md:text-5xl font-black text-slate-900 tracking-tighter leading-tight"),
					g.Text(p.Title),
				),
				h.Div(h.Class("h-2 w-32 bg-indigo-600 rounded-full mt-4")),
			),
		),
		g.Group(children),
	)
}

// SubSectionTitle renders a secondary heading with an accent bar.
func SubSectionTitle(text string) g.Node {
	return h.H3(
		h.Class("text-xl md:text-2xl font-black text-slate-800 mb-8 mt-12 flex items-center gap-3"),
		h.Div(h.Class("w-2 h-8 bg-indigo-600 rounded-full")),
		g.Text(text),
	)
}
