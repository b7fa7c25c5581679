package content

// Section anchor ids. Navigation links and sections share these values.
const (
	SectionRegional   = "regional"
	SectionEnterprise = "enterprise"
	SectionPersonal   = "personal"
)

// CanonicalSections is the section order of the published report.
var CanonicalSections = []string{SectionRegional, SectionEnterprise, SectionPersonal}

// Report is the complete content table for the page.
type Report struct {
	Lang     string          `yaml:"lang"`
	Meta     Meta            `yaml:"meta"`
	Brand    Brand           `yaml:"brand"`
	Nav      []NavLink       `yaml:"nav"`
	Header   Header          `yaml:"header"`
	Hero     Hero            `yaml:"hero"`
	Sections []SectionConfig `yaml:"sections"`
	Footer   Footer          `yaml:"footer"`

	digest string
}

// Meta carries document-level metadata used for the head and SEO tags.
type Meta struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	SiteName     string `yaml:"site_name"`
	Organization string `yaml:"organization"`
	OGImage      string `yaml:"og_image"`
}

// Brand is the logo lockup shown in the header.
type Brand struct {
	Icon   string `yaml:"icon"`
	Name   string `yaml:"name"`
	Accent string `yaml:"accent"`
}

// NavLink points at a section anchor. An empty target renders an inert "#" link.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Href returns the in-page link for the target.
func (l NavLink) Href() string {
	return "#" + l.Target
}

// Header holds the sticky header call to action.
type Header struct {
	CTA NavLink `yaml:"cta"`
}

// Hero is the opening block of the page.
type Hero struct {
	Eyebrow       string `yaml:"eyebrow"`
	Heading       string `yaml:"heading"`
	HeadingAccent string `yaml:"heading_accent"`
	Lead          string `yaml:"lead"`
	Primary       CTA    `yaml:"primary"`
	Secondary     CTA    `yaml:"secondary"`
}

// CTA is a call-to-action control. Controls without a target render as buttons.
type CTA struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
	Icon   string `yaml:"icon"`
}

// IsLink reports whether the control navigates to a section.
func (c CTA) IsLink() bool { return c.Target != "" }

// SectionConfig describes one titled, anchored page region.
type SectionConfig struct {
	ID       string  `yaml:"id"`
	Title    string  `yaml:"title"`
	Icon     string  `yaml:"icon"`
	Gradient string  `yaml:"gradient"`
	Blocks   []Block `yaml:"blocks"`
}

// BlockKind selects the layout used for a block of section content.
type BlockKind string

const (
	BlockSubtitle   BlockKind = "subtitle"
	BlockPanels     BlockKind = "panels"
	BlockCards      BlockKind = "cards"
	BlockFeatures   BlockKind = "features"
	BlockHighlights BlockKind = "highlights"
)

// Block is one piece of nested section content. Only the fields matching Kind are used.
type Block struct {
	Kind       BlockKind           `yaml:"kind"`
	Text       string              `yaml:"text"`
	Panels     []Panel             `yaml:"panels"`
	Cards      []CardConfig        `yaml:"cards"`
	Features   []FeatureItemConfig `yaml:"features"`
	Highlights []Highlight         `yaml:"highlights"`
}

// CardConfig is a visual card with an image placeholder.
type CardConfig struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	ImagePlaceholder string `yaml:"image_placeholder"`
	Badge            string `yaml:"badge"`
	Icon             string `yaml:"icon"`
}

// FeatureItemConfig is an icon and text row.
type FeatureItemConfig struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Theme names the colour treatment of a panel.
type Theme string

const (
	ThemeNavy   Theme = "navy"
	ThemeSlate  Theme = "slate"
	ThemeIndigo Theme = "indigo"
	ThemeRose   Theme = "rose"
)

// Panel is a large two-column feature panel.
type Panel struct {
	Theme       Theme    `yaml:"theme"`
	Eyebrow     string   `yaml:"eyebrow"`
	EyebrowIcon string   `yaml:"eyebrow_icon"`
	Heading     []string `yaml:"heading"`
	Body        string   `yaml:"body"`
	Bullets     []string `yaml:"bullets"`
	BulletIcon  string   `yaml:"bullet_icon"`
	Tags        []string `yaml:"tags"`
	Media       string   `yaml:"media"`
	Tiles       []string `yaml:"tiles"`
	TileIcon    string   `yaml:"tile_icon"`
}

// Accent names the colour of a highlight tile.
type Accent string

const (
	AccentIndigo Accent = "indigo"
	AccentViolet Accent = "violet"
	AccentPink   Accent = "pink"
	AccentRose   Accent = "rose"
)

// Highlight is a compact icon card.
type Highlight struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Accent      Accent `yaml:"accent"`
}

// Footer holds the closing brand block, duplicate navigation and copyright.
type Footer struct {
	Title     string      `yaml:"title"`
	Icon      string      `yaml:"icon"`
	Tagline   string      `yaml:"tagline"`
	Groups    []LinkGroup `yaml:"groups"`
	Copyright string      `yaml:"copyright"`
	Social    []string    `yaml:"social"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string    `yaml:"title"`
	Links []NavLink `yaml:"links"`
}
