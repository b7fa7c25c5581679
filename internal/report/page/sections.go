package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/strategy-report/internal/report/components"
	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/motion"
)

func section(s content.SectionConfig) g.Node {
	return components.Section(components.SectionProps{
		ID:       s.ID,
		Title:    s.Title,
		Icon:     s.Icon,
		Gradient: s.Gradient,
	}, blocks(s.Blocks)...)
}

func blocks(bs []content.Block) []g.Node {
	nodes := make([]g.Node, 0, len(bs))
	for i, b := range bs {
		// Trailing blocks drop their bottom margin so the section spacing applies.
		last := i == len(bs)-1
		nodes = append(nodes, block(b, last))
	}
	return nodes
}

func block(b content.Block, last bool) g.Node {
	spacing := "mb-20"
	if last {
		spacing = ""
	}
	switch b.Kind {
	case content.BlockSubtitle:
		return components.SubSectionTitle(b.Text)
	case content.BlockPanels:
		return h.Div(
			h.Class(join("grid lg:grid-cols-2 gap-12 items-stretch", spacing)),
			g.Map(b.Panels, func(p content.Panel) g.Node {
				return components.Panel(components.PanelProps{
					Theme:       string(p.Theme),
					Eyebrow:     p.Eyebrow,
					EyebrowIcon: p.EyebrowIcon,
					Heading:     p.Heading,
					Body:        p.Body,
					Bullets:     p.Bullets,
					BulletIcon:  p.BulletIcon,
					Tags:        p.Tags,
					Media:       p.Media,
					Tiles:       p.Tiles,
					TileIcon:    p.TileIcon,
				})
			}),
		)
	case content.BlockCards:
		cards := make([]g.Node, 0, len(b.Cards))
		for i, c := range b.Cards {
			cards = append(cards, components.Card(components.CardProps{
				Title:            c.Title,
				Description:      c.Description,
				ImagePlaceholder: c.ImagePlaceholder,
				Badge:            c.Badge,
				Icon:             c.Icon,
				Delay:            motion.Stagger(i),
			}))
		}
		return h.Div(h.Class(join("grid grid-cols-1 md:grid-cols-3 gap-10", spacing)), g.Group(cards))
	case content.BlockFeatures:
		return h.Div(
			h.Class(join("grid lg:grid-cols-2 gap-10", spacing)),
			g.Map(b.Features, func(f content.FeatureItemConfig) g.Node {
				return components.FeatureItem(components.FeatureItemProps{
					Icon:        f.Icon,
					Title:       f.Title,
					Description: f.Description,
				})
			}),
		)
	case content.BlockHighlights:
		return h.Div(
			h.Class(join("grid md:grid-cols-3 gap-10", spacing)),
			g.Map(b.Highlights, func(hl content.Highlight) g.Node {
				return components.Highlight(components.HighlightProps{
					Icon:        hl.Icon,
					Title:       hl.Title,
					Description: hl.Description,
					Accent:      string(hl.Accent),
				})
			}),
		)
	}
	return nil
}

func join(class, extra string) string {
	if extra == "" {
		return class
	}
	return class + " " + extra
}
