package content

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"finitefield.org/strategy-report/internal/report/icon"
)

// DefaultGradient is applied to sections that do not name one.
const DefaultGradient = "from-indigo-600 to-violet-600"

var gradientPattern = regexp.MustCompile(`^from-[a-z]+-[1-9]00 to-[a-z]+-[1-9]00$`)

var (
	knownThemes  = map[Theme]bool{ThemeNavy: true, ThemeSlate: true, ThemeIndigo: true, ThemeRose: true}
	knownAccents = map[Accent]bool{AccentIndigo: true, AccentViolet: true, AccentPink: true, AccentRose: true}
	knownBlocks  = map[BlockKind]bool{BlockSubtitle: true, BlockPanels: true, BlockCards: true, BlockFeatures: true, BlockHighlights: true}
)

// ValidationError lists every problem found in a report.
type ValidationError struct {
	problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed: [%s]", strings.Join(e.problems, "; "))
}

// Problems returns a copy of the problem list.
func (e *ValidationError) Problems() []string {
	out := make([]string, len(e.problems))
	copy(out, e.problems)
	return out
}

func (e *ValidationError) addf(format string, args ...any) {
	e.problems = append(e.problems, fmt.Sprintf(format, args...))
}

// CheckCanonical reports an error unless the report carries exactly the
// canonical sections in canonical order.
func (r Report) CheckCanonical() error {
	ids := r.SectionIDs()
	if slices.Equal(ids, CanonicalSections) {
		return nil
	}
	return fmt.Errorf("content: sections %v, want %v", ids, CanonicalSections)
}

// Tag returns the parsed document language.
func (r Report) Tag() (language.Tag, error) {
	return language.Parse(r.Lang)
}

// Validate checks anchor uniqueness, link targets, icon names and style tokens.
func (r Report) Validate() error {
	verr := &ValidationError{}

	if _, err := r.Tag(); err != nil {
		verr.addf("lang %q: %v", r.Lang, err)
	}
	if strings.TrimSpace(r.Meta.Title) == "" {
		verr.addf("meta.title is required")
	}
	if len(r.Sections) == 0 {
		verr.addf("at least one section is required")
	}

	ids := make(map[string]int, len(r.Sections))
	for i, s := range r.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		switch {
		case s.ID == "":
			verr.addf("%s.id is required", path)
		case strings.ContainsAny(s.ID, " #\t"):
			verr.addf("%s.id %q must not contain spaces or '#'", path, s.ID)
		}
		if s.ID != "" {
			ids[s.ID]++
			if ids[s.ID] == 2 {
				verr.addf("section id %q is not unique", s.ID)
			}
		}
		if strings.TrimSpace(s.Title) == "" {
			verr.addf("%s.title is required", path)
		}
		checkIcon(verr, path+".icon", s.Icon, true)
		if !gradientPattern.MatchString(s.Gradient) {
			verr.addf("%s.gradient %q is not a from/to colour pair", path, s.Gradient)
		}
		for bi, b := range s.Blocks {
			validateBlock(verr, fmt.Sprintf("%s.blocks[%d]", path, bi), b)
		}
	}

	if len(r.Nav) == 0 {
		verr.addf("nav requires at least one link")
	}
	for i, link := range r.Nav {
		if link.Target == "" {
			verr.addf("nav[%d] %q has no target", i, link.Label)
		}
	}
	if r.Header.CTA.Target == "" {
		verr.addf("header.cta has no target")
	}
	for _, link := range r.Links() {
		if link.Target == "" {
			continue
		}
		if ids[link.Target] != 1 {
			verr.addf("link %q targets %q which matches %d sections", link.Label, link.Target, ids[link.Target])
		}
	}

	checkIcon(verr, "brand.icon", r.Brand.Icon, true)
	checkIcon(verr, "hero.primary.icon", r.Hero.Primary.Icon, false)
	checkIcon(verr, "hero.secondary.icon", r.Hero.Secondary.Icon, false)
	checkIcon(verr, "footer.icon", r.Footer.Icon, false)
	for i, name := range r.Footer.Social {
		checkIcon(verr, fmt.Sprintf("footer.social[%d]", i), name, true)
	}

	if len(verr.problems) > 0 {
		return verr
	}
	return nil
}

func validateBlock(verr *ValidationError, path string, b Block) {
	if !knownBlocks[b.Kind] {
		verr.addf("%s.kind %q is unknown", path, b.Kind)
		return
	}
	switch b.Kind {
	case BlockSubtitle:
		if strings.TrimSpace(b.Text) == "" {
			verr.addf("%s.text is required", path)
		}
	case BlockPanels:
		for i, p := range b.Panels {
			pp := fmt.Sprintf("%s.panels[%d]", path, i)
			if !knownThemes[p.Theme] {
				verr.addf("%s.theme %q is unknown", pp, p.Theme)
			}
			checkIcon(verr, pp+".eyebrow_icon", p.EyebrowIcon, false)
			checkIcon(verr, pp+".bullet_icon", p.BulletIcon, len(p.Bullets) > 0)
			checkIcon(verr, pp+".tile_icon", p.TileIcon, len(p.Tiles) > 0)
		}
	case BlockCards:
		for i, c := range b.Cards {
			cp := fmt.Sprintf("%s.cards[%d]", path, i)
			if strings.TrimSpace(c.Title) == "" {
				verr.addf("%s.title is required", cp)
			}
			checkIcon(verr, cp+".icon", c.Icon, false)
		}
	case BlockFeatures:
		for i, f := range b.Features {
			fp := fmt.Sprintf("%s.features[%d]", path, i)
			if strings.TrimSpace(f.Title) == "" {
				verr.addf("%s.title is required", fp)
			}
			checkIcon(verr, fp+".icon", f.Icon, true)
		}
	case BlockHighlights:
		for i, hl := range b.Highlights {
			hp := fmt.Sprintf("%s.highlights[%d]", path, i)
			if !knownAccents[hl.Accent] {
				verr.addf("%s.accent %q is unknown", hp, hl.Accent)
			}
			checkIcon(verr, hp+".icon", hl.Icon, true)
		}
	}
}

func checkIcon(verr *ValidationError, path, name string, required bool) {
	if name == "" {
		if required {
			verr.addf("%s is required", path)
		}
		return
	}
	if !icon.Known(name) {
		verr.addf("%s %q is not a known glyph", path, name)
	}
}
