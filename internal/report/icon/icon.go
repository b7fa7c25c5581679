package icon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/stoewer/go-strcase"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyph names used by the report content. Names follow the upstream icon set.
const (
	Target          = "Target"
	Layers          = "Layers"
	Lightbulb       = "Lightbulb"
	Settings        = "Settings"
	Users           = "Users"
	Zap             = "Zap"
	ShoppingBag     = "ShoppingBag"
	UserCircle      = "UserCircle"
	LayoutDashboard = "LayoutDashboard"
	Cpu             = "Cpu"
	ArrowRight      = "ArrowRight"
	PlayCircle      = "PlayCircle"
	Network         = "Network"
	Share2          = "Share2"
	Rocket          = "Rocket"
	Globe           = "Globe"
	Briefcase       = "Briefcase"
	UserCheck       = "UserCheck"
)

// DefaultSize matches the upstream icon components when no size is given.
const DefaultSize = 24

// Glyph is a named SVG body drawn on a 24x24 stroke grid.
type Glyph struct {
	Name string
	Body string
}

// ClassName returns the CSS class identifying the glyph, e.g. "lucide-user-check".
func (gl Glyph) ClassName() string {
	return "lucide-" + kebab(gl.Name)
}

// Lookup returns the glyph registered under name.
func Lookup(name string) (Glyph, bool) {
	body, ok := glyphs[strings.TrimSpace(name)]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{Name: strings.TrimSpace(name), Body: body}, true
}

// Known reports whether name is part of the glyph set.
func Known(name string) bool {
	_, ok := glyphs[strings.TrimSpace(name)]
	return ok
}

// Names lists every registered glyph in lexical order.
func Names() []string {
	out := make([]string, 0, len(glyphs))
	for name := range glyphs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render returns the inline SVG for name. Unknown names render nothing.
func Render(name string, size int, class string) g.Node {
	glyph, ok := Lookup(name)
	if !ok {
		return nil
	}
	if size <= 0 {
		size = DefaultSize
	}
	classes := "lucide " + glyph.ClassName()
	if class = strings.TrimSpace(class); class != "" {
		classes += " " + class
	}
	dim := strconv.Itoa(size)
	return h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		h.Width(dim),
		h.Height(dim),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Class(classes),
		h.Aria("hidden", "true"),
		g.Raw(glyph.Body),
	)
}

// kebab converts glyph names to kebab case; digits stay attached to the
// preceding word ("Share2" -> "share-2" upstream, "share2" from strcase).
func kebab(name string) string {
	out := strcase.KebabCase(name)
	if n := len(out); n > 1 && out[n-1] >= '0' && out[n-1] <= '9' && out[n-2] != '-' {
		out = out[:n-1] + "-" + out[n-1:]
	}
	return out
}
