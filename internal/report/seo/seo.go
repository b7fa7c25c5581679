package seo

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []map[string]any
}

// Tags renders the meta, link and JSON-LD elements for the document head.
func (m Meta) Tags() g.Node {
	og := m.OG
	if og.Title == "" {
		og.Title = m.Title
	}
	if og.Description == "" {
		og.Description = m.Description
	}
	if og.Type == "" {
		og.Type = "website"
	}
	card := m.Twitter.Card
	if card == "" {
		card = "summary_large_image"
	}
	return g.Group{
		g.If(m.Description != "", h.Meta(h.Name("description"), h.Content(m.Description))),
		g.If(m.Canonical != "", h.Link(h.Rel("canonical"), h.Href(m.Canonical))),
		property("og:title", og.Title),
		property("og:description", og.Description),
		property("og:type", og.Type),
		property("og:url", og.URL),
		property("og:site_name", og.SiteName),
		property("og:locale", og.Locale),
		property("og:image", og.Image),
		h.Meta(h.Name("twitter:card"), h.Content(card)),
		g.If(m.Twitter.Image != "", h.Meta(h.Name("twitter:image"), h.Content(m.Twitter.Image))),
		g.Map(m.JSONLD, func(doc map[string]any) g.Node {
			payload := JSON(doc)
			if payload == "" {
				return nil
			}
			return h.Script(h.Type("application/ld+json"), g.Raw(payload))
		}),
	}
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", name), h.Content(value))
}
