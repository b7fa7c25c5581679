package seo

import (
	"bytes"
	"encoding/json"
)

// JSON marshals v to a compact JSON string safe for embedding in a script
// element. It returns an empty string on error.
func JSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebPage returns a WebPage schema; sections become hasPart entries pointing
// at their in-page anchors.
func WebPage(name, description, url, lang string, sections []PagePart) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebPage",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	if len(sections) > 0 {
		parts := make([]map[string]any, 0, len(sections))
		for _, s := range sections {
			part := map[string]any{
				"@type": "WebPageElement",
				"name":  s.Name,
			}
			if s.Anchor != "" {
				part["url"] = url + "#" + s.Anchor
			}
			parts = append(parts, part)
		}
		m["hasPart"] = parts
	}
	return m
}

// PagePart names an anchored region of a page.
type PagePart struct {
	Name   string
	Anchor string
}
